package entities

import (
	"context"
	"time"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// MedicalCard es una consulta (historia clínica) de una mascota.
type MedicalCard struct {
	rec record

	ID              int
	PatientID       int
	DateCreate      *time.Time
	DateEdit        *time.Time
	Diagnose        string
	Recommendation  string
	Description     string
	AdmissionTypeID *int
	Weight          *float64
	Temperature     *float64
	MeetResultID    *int
	DoctorID        *int
	CreatorID       *int
	Status          MedicalCardStatus
	ClinicID        *int
}

var MedicalCardKind = fetch.Kind[MedicalCard]{Route: gateway.RouteMedicalCard, Construct: NewMedicalCard}

func NewMedicalCard(gw gateway.Gateway, raw payload.Raw) (MedicalCard, error) {
	r := payload.NewReader("MedicalCard", raw)
	mc := MedicalCard{
		ID:              r.Int("id"),
		PatientID:       r.Int("patient_id"),
		DateCreate:      r.OptionalDateTime("date_create"),
		DateEdit:        r.OptionalDateTime("date_edit"),
		Diagnose:        r.String("diagnos"),
		Recommendation:  r.String("recomendation"),
		Description:     r.String("description"),
		AdmissionTypeID: r.OptionalID("admission_type"),
		Weight:          r.OptionalFloat("weight"),
		Temperature:     r.OptionalFloat("temperature"),
		MeetResultID:    r.OptionalID("meet_result_id"),
		DoctorID:        r.OptionalID("doctor_id"),
		CreatorID:       r.OptionalID("creator_id"),
		Status:          payload.Enum(r, "status", "MedicalCardStatus", medicalCardStatuses...),
		ClinicID:        r.OptionalID("clinic_id"),
	}
	if err := r.Err(); err != nil {
		return MedicalCard{}, err
	}
	mc.rec = newRecord(gw, "MedicalCard", raw)
	return mc, nil
}

func NewMedicalCards(gw gateway.Gateway, raws []payload.Raw) ([]MedicalCard, error) {
	return fetch.FromRawSequence(gw, MedicalCardKind, raws)
}

func (mc MedicalCard) Self(ctx context.Context) (MedicalCard, error) {
	return resolveKey(ctx, mc.rec, "id", MedicalCardKind)
}

func (mc MedicalCard) Pet(ctx context.Context) (Pet, error) {
	return resolveKey(ctx, mc.rec, "patient_id", PetKind)
}

func (mc MedicalCard) User(ctx context.Context) (*User, error) {
	return resolveRef(ctx, mc.rec, "doctor_id", UserKind)
}

func (mc MedicalCard) AdmissionType(ctx context.Context) (*ComboManualItem, error) {
	return resolveAdmissionType(ctx, mc.rec, "admission_type")
}

func (mc MedicalCard) MeetResult(ctx context.Context) (*ComboManualItem, error) {
	return resolveMeetResult(ctx, mc.rec, "meet_result_id")
}
