package entities

import "vetmanager-api-gateway/internal/domain/payload"

// ClientStatus
// @Enum ACTIVE, DISABLED, DELETED, TEMPORARY
type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "ACTIVE"
	ClientStatusDisabled  ClientStatus = "DISABLED"
	ClientStatusDeleted   ClientStatus = "DELETED"
	ClientStatusTemporary ClientStatus = "TEMPORARY"
)

var clientStatuses = []ClientStatus{ClientStatusActive, ClientStatusDisabled, ClientStatusDeleted, ClientStatusTemporary}

func ParseClientStatus(s string) (ClientStatus, error) {
	return payload.ParseEnum("ClientStatus", s, clientStatuses...)
}

// PetSex
// @Enum male, female, castrated, sterilized, unknown
type PetSex string

const (
	PetSexMale       PetSex = "male"
	PetSexFemale     PetSex = "female"
	PetSexCastrated  PetSex = "castrated"
	PetSexSterilized PetSex = "sterilized"
	PetSexUnknown    PetSex = "unknown"
)

var petSexes = []PetSex{PetSexMale, PetSexFemale, PetSexCastrated, PetSexSterilized, PetSexUnknown}

func ParsePetSex(s string) (PetSex, error) {
	return payload.ParseEnum("PetSex", s, petSexes...)
}

// readPetSex: la API manda "" cuando no se cargó el sexo; eso es unknown, no un error.
// Cualquier otro código desconocido sí falla.
func readPetSex(r *payload.Reader, field string) PetSex {
	if r.String(field) == "" {
		return PetSexUnknown
	}
	return payload.Enum(r, field, "PetSex", petSexes...)
}

// PetStatus
// @Enum alive, dead, deleted
type PetStatus string

const (
	PetStatusAlive   PetStatus = "alive"
	PetStatusDead    PetStatus = "dead"
	PetStatusDeleted PetStatus = "deleted"
)

var petStatuses = []PetStatus{PetStatusAlive, PetStatusDead, PetStatusDeleted}

func ParsePetStatus(s string) (PetStatus, error) {
	return payload.ParseEnum("PetStatus", s, petStatuses...)
}

// MedicalCardStatus
// @Enum active, inactive, draft, deleted
type MedicalCardStatus string

const (
	MedicalCardStatusActive   MedicalCardStatus = "active"
	MedicalCardStatusInactive MedicalCardStatus = "inactive"
	MedicalCardStatusDraft    MedicalCardStatus = "draft"
	MedicalCardStatusDeleted  MedicalCardStatus = "deleted"
)

var medicalCardStatuses = []MedicalCardStatus{
	MedicalCardStatusActive,
	MedicalCardStatusInactive,
	MedicalCardStatusDraft,
	MedicalCardStatusDeleted,
}

func ParseMedicalCardStatus(s string) (MedicalCardStatus, error) {
	return payload.ParseEnum("MedicalCardStatus", s, medicalCardStatuses...)
}
