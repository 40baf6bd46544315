package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jjenkins/waiver/internal/model"
)

// WaiverStore handles database operations for completed waivers. The table is
// append-only: there are no update or delete operations anywhere in the
// system.
type WaiverStore struct {
	db *sql.DB
}

// NewWaiverStore creates a new WaiverStore
func NewWaiverStore(db *sql.DB) *WaiverStore {
	return &WaiverStore{db: db}
}

// Insert writes one completed waiver with its audit metadata and integrity
// digest as a single row. The store assigns the record identifier and sets it
// on rec before returning it.
func (s *WaiverStore) Insert(ctx context.Context, rec *model.WaiverRecord) (string, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO waivers (
			id, form_id, parent_name, parent_email, parent_phone,
			child_name, child_dob, child_address, child_medical_notes,
			child_doctor, child_insurance, emergency_name, emergency_phone,
			signature, date_signed, liability_text,
			submitted_at, ip, user_agent, referer, pdf_hash
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13,
			$14, $15, $16,
			$17, $18, $19, $20, $21
		)
	`

	_, err := s.db.ExecContext(ctx, query,
		id,
		rec.FormID,
		rec.ParentName,
		rec.ParentEmail,
		rec.ParentPhone,
		rec.ChildName,
		rec.ChildDOB,
		rec.ChildAddress,
		rec.ChildMedicalNotes,
		rec.ChildDoctor,
		rec.ChildInsurance,
		rec.EmergencyName,
		rec.EmergencyPhone,
		rec.Signature,
		rec.DateSigned,
		rec.LiabilityText,
		rec.SubmittedAt,
		rec.IP,
		rec.UserAgent,
		rec.Referer,
		rec.PDFHash,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert waiver: %w", err)
	}

	rec.ID = id
	return id, nil
}
