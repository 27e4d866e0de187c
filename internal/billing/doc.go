// Package billing holds both sides of the billing RPC seam: the client the
// patient service uses to provision billing accounts, and the gRPC server
// implementation behind it. The call is synchronous and happens strictly
// after the patient row commits; there is no retry, outbox, or rollback on
// failure (see PatientService.Create for the consequences).
package billing
