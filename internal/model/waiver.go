package model

import "time"

// Waiver represents one parent/guardian's completed release form for one or
// more participants. Multiple children are entered one per line inside the
// child fields; the server treats them as opaque text.
type Waiver struct {
	FormID            string `json:"formId"`
	ParentName        string `json:"parentName"`
	ParentEmail       string `json:"parentEmail"`
	ParentPhone       string `json:"parentPhone"`
	ChildName         string `json:"childName"`
	ChildDOB          string `json:"childDOB"`
	ChildAddress      string `json:"childAddress"`
	ChildMedicalNotes string `json:"childMedicalNotes"`
	ChildDoctor       string `json:"childDoctor"`
	ChildInsurance    string `json:"childInsurance"`
	EmergencyName     string `json:"emergencyName"`
	EmergencyPhone    string `json:"emergencyPhone"`
	Signature         string `json:"signature"`
	DateSigned        string `json:"dateSigned"`

	// LiabilityText is the exact legal text shown to the signer, captured
	// verbatim so the record stays verifiable even if the text is later edited.
	LiabilityText string `json:"liabilityText"`
}

// WaiverRecord is the persisted row: the submission flattened alongside its
// audit metadata and the integrity digest of the rendered document. Records
// are written exactly once and never updated or deleted.
type WaiverRecord struct {
	ID string
	Waiver
	SubmittedAt time.Time
	IP          string
	UserAgent   string
	Referer     string
	PDFHash     string
}
