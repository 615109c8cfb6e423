package entities

import (
	"context"
	"time"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// PetType es la especie (perro, gato, ...).
type PetType struct {
	rec record

	ID      int
	Title   string
	Picture string
	Type    string
}

var PetTypeKind = fetch.Kind[PetType]{Route: gateway.RoutePetType, Construct: NewPetType}

func NewPetType(gw gateway.Gateway, raw payload.Raw) (PetType, error) {
	r := payload.NewReader("PetType", raw)
	pt := PetType{
		ID:      r.Int("id"),
		Title:   r.String("title"),
		Picture: payload.ToString(r.OptionalString("picture")),
		Type:    payload.ToString(r.OptionalString("type")),
	}
	if err := r.Err(); err != nil {
		return PetType{}, err
	}
	pt.rec = newRecord(gw, "PetType", raw)
	return pt, nil
}

func (pt PetType) Self(ctx context.Context) (PetType, error) {
	return resolveKey(ctx, pt.rec, "id", PetTypeKind)
}

func (pt PetType) Breeds(ctx context.Context) ([]Breed, error) {
	return resolveChildren(ctx, pt.rec, "id", BreedKind, "pet_type_id", nil)
}

type Breed struct {
	rec record

	ID        int
	Title     string
	PetTypeID int
}

var BreedKind = fetch.Kind[Breed]{Route: gateway.RouteBreed, Construct: NewBreed}

func NewBreed(gw gateway.Gateway, raw payload.Raw) (Breed, error) {
	r := payload.NewReader("Breed", raw)
	b := Breed{
		ID:        r.Int("id"),
		Title:     r.String("title"),
		PetTypeID: r.Int("pet_type_id"),
	}
	if err := r.Err(); err != nil {
		return Breed{}, err
	}
	b.rec = newRecord(gw, "Breed", raw)
	return b, nil
}

func (b Breed) Self(ctx context.Context) (Breed, error) {
	return resolveKey(ctx, b.rec, "id", BreedKind)
}

func (b Breed) PetType(ctx context.Context) (PetType, error) {
	return resolveKey(ctx, b.rec, "pet_type_id", PetTypeKind)
}

type Pet struct {
	rec record

	ID           int
	OwnerID      *int
	TypeID       *int
	Alias        string
	Sex          PetSex
	DateRegister *time.Time
	Birthday     *time.Time // solo fecha
	Note         string
	BreedID      *int
	OldID        *int
	ColorID      *int
	DeathNote    string
	DeathDate    *time.Time
	ChipNumber   string
	LabNumber    string
	Status       PetStatus
	Picture      string
	Weight       *float64
	EditDate     *time.Time
}

var PetKind = fetch.Kind[Pet]{Route: gateway.RoutePet, Construct: NewPet}

func NewPet(gw gateway.Gateway, raw payload.Raw) (Pet, error) {
	r := payload.NewReader("Pet", raw)
	p := Pet{
		ID:           r.Int("id"),
		OwnerID:      r.OptionalID("owner_id"),
		TypeID:       r.OptionalID("type_id"),
		Alias:        r.String("alias"),
		Sex:          readPetSex(r, "sex"),
		DateRegister: r.OptionalDateTime("date_register"),
		Birthday:     r.OptionalDate("birthday"),
		Note:         payload.ToString(r.OptionalString("note")),
		BreedID:      r.OptionalID("breed_id"),
		OldID:        r.OptionalID("old_id"),
		ColorID:      r.OptionalID("color_id"),
		DeathNote:    payload.ToString(r.OptionalString("deathnote")),
		DeathDate:    r.OptionalDate("deathdate"),
		ChipNumber:   payload.ToString(r.OptionalString("chip_number")),
		LabNumber:    payload.ToString(r.OptionalString("lab_number")),
		Status:       payload.Enum(r, "status", "PetStatus", petStatuses...),
		Picture:      payload.ToString(r.OptionalString("picture")),
		Weight:       r.OptionalFloat("weight"),
		EditDate:     r.OptionalDateTime("edit_date"),
	}
	if err := r.Err(); err != nil {
		return Pet{}, err
	}
	p.rec = newRecord(gw, "Pet", raw)
	return p, nil
}

func NewPets(gw gateway.Gateway, raws []payload.Raw) ([]Pet, error) {
	return fetch.FromRawSequence(gw, PetKind, raws)
}

func (p Pet) Self(ctx context.Context) (Pet, error) {
	return resolveKey(ctx, p.rec, "id", PetKind)
}

func (p Pet) Owner(ctx context.Context) (*Client, error) {
	return resolveRef(ctx, p.rec, "owner_id", ClientKind)
}

func (p Pet) PetType(ctx context.Context) (*PetType, error) {
	return resolveRef(ctx, p.rec, "type_id", PetTypeKind)
}

func (p Pet) Breed(ctx context.Context) (*Breed, error) {
	return resolveRef(ctx, p.rec, "breed_id", BreedKind)
}

// MedicalCards trae las consultas de la mascota (patient_id).
func (p Pet) MedicalCards(ctx context.Context) ([]MedicalCard, error) {
	return resolveChildren(ctx, p.rec, "id", MedicalCardKind, "patient_id", nil)
}
