package entities

import (
	"context"
	"time"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// MedicalCardsByClient es la fila del endpoint agregado MedicalcardsDataByClient:
// la consulta más datos planos de la mascota, el dueño y el médico.
type MedicalCardsByClient struct {
	rec record

	ID                 int
	DateEdit           *time.Time
	Diagnose           *string
	DoctorID           *int
	Status             MedicalCardStatus
	Description        *string
	Recommendation     string
	Weight             *float64
	Temperature        *float64
	MeetResultID       *int
	AdmissionTypeID    *int
	PetID              int
	PetAlias           string
	PetBirthday        *time.Time
	PetSex             PetSex
	PetNote            *string
	PetType            *string
	PetBreed           *string
	ClientID           *int
	Owner              FullName
	OwnerPhone         string
	DoctorNickname     *string
	Doctor             FullName
	IsEditable         bool
	MeetResultTitle    *string
	AdmissionTypeTitle *string
}

var MedicalCardsByClientKind = fetch.Kind[MedicalCardsByClient]{
	Route:     gateway.RouteMedicalCardsByClient,
	Construct: NewMedicalCardsByClient,
}

func NewMedicalCardsByClient(gw gateway.Gateway, raw payload.Raw) (MedicalCardsByClient, error) {
	r := payload.NewReader("MedicalCardsByClient", raw)
	mc := MedicalCardsByClient{
		ID:              r.Int("medical_card_id"),
		DateEdit:        r.OptionalDateTime("date_edit"),
		Diagnose:        readDiagnose(r, "diagnos"),
		DoctorID:        r.OptionalID("doctor_id"),
		Status:          payload.Enum(r, "medical_card_status", "MedicalCardStatus", medicalCardStatuses...),
		Description:     r.OptionalString("healing_process"),
		Recommendation:  r.String("recomendation"),
		Weight:          r.OptionalFloat("weight"),
		Temperature:     r.OptionalFloat("temperature"),
		MeetResultID:    r.OptionalID("meet_result_id"),
		AdmissionTypeID: r.OptionalID("admission_type"),
		PetID:           r.Int("pet_id"),
		PetAlias:        r.String("alias"),
		PetBirthday:     r.OptionalDate("birthday"),
		PetSex:          readPetSex(r, "sex"),
		PetNote:         r.OptionalString("note"),
		PetType:         r.OptionalString("pet_type"),
		PetBreed:        r.OptionalString("breed"),
		ClientID:        r.OptionalID("client_id"),
		Owner: FullName{
			First:  r.String("first_name"),
			Middle: r.String("middle_name"),
			Last:   r.String("last_name"),
		},
		OwnerPhone:     payload.ToString(r.OptionalString("phone")),
		DoctorNickname: r.OptionalString("doctor_nickname"),
		Doctor: FullName{
			First:  payload.ToString(r.OptionalString("doctor_first_name")),
			Middle: payload.ToString(r.OptionalString("doctor_middle_name")),
			Last:   payload.ToString(r.OptionalString("doctor_last_name")),
		},
		IsEditable:         r.Bool("editable"),
		MeetResultTitle:    r.OptionalString("meet_result_title"),
		AdmissionTypeTitle: r.OptionalString("admission_type_title"),
	}
	if err := r.Err(); err != nil {
		return MedicalCardsByClient{}, err
	}
	mc.rec = newRecord(gw, "MedicalCardsByClient", raw)
	return mc, nil
}

// readDiagnose: sin diagnóstico la API manda null, "" o "0".
func readDiagnose(r *payload.Reader, field string) *string {
	d := r.OptionalString(field)
	if d != nil && *d == "0" {
		return nil
	}
	return d
}

// GetMedicalCardsByClientID trae las consultas de todas las mascotas del cliente.
// extra es un fragmento crudo de query string ("limit=5&sort=...") y no se valida.
func GetMedicalCardsByClientID(ctx context.Context, gw gateway.Gateway, clientID int, extra string) ([]MedicalCardsByClient, error) {
	return fetch.GetByParentID(ctx, gw, MedicalCardsByClientKind, "client_id", clientID, extra)
}

// Self pide la MedicalCard completa (otro endpoint, otro tipo).
func (mc MedicalCardsByClient) Self(ctx context.Context) (MedicalCard, error) {
	return resolveKey(ctx, mc.rec, "medical_card_id", MedicalCardKind)
}

func (mc MedicalCardsByClient) AdmissionType(ctx context.Context) (*ComboManualItem, error) {
	return resolveAdmissionType(ctx, mc.rec, "admission_type")
}

func (mc MedicalCardsByClient) MeetResult(ctx context.Context) (*ComboManualItem, error) {
	return resolveMeetResult(ctx, mc.rec, "meet_result_id")
}

func (mc MedicalCardsByClient) Client(ctx context.Context) (*Client, error) {
	return resolveRef(ctx, mc.rec, "client_id", ClientKind)
}

func (mc MedicalCardsByClient) Pet(ctx context.Context) (Pet, error) {
	return resolveKey(ctx, mc.rec, "pet_id", PetKind)
}

func (mc MedicalCardsByClient) User(ctx context.Context) (*User, error) {
	return resolveRef(ctx, mc.rec, "doctor_id", UserKind)
}
