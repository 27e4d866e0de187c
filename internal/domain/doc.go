// Package domain contains the core business entities of the clinic
// platform — patients and login credentials — together with their
// validation rules and sentinel errors. It has no dependency on any
// storage or transport concern.
package domain
