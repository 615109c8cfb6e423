package explorer

import (
	"time"

	"vetmanager-api-gateway/internal/domain/entities"
)

// Las vistas son lo que sale por JSON/YAML; los records no se serializan directo.

type fullNameView struct {
	First  string `json:"first" yaml:"first"`
	Middle string `json:"middle" yaml:"middle"`
	Last   string `json:"last" yaml:"last"`
	Full   string `json:"full" yaml:"full"`
}

func toFullName(n entities.FullName) fullNameView {
	return fullNameView{First: n.First, Middle: n.Middle, Last: n.Last, Full: n.FullStartingFromLast()}
}

// ClientView es un cliente (dueño de mascotas).
type ClientView struct {
	ID            int                   `json:"id" yaml:"id"`
	Name          fullNameView          `json:"name" yaml:"name"`
	Status        entities.ClientStatus `json:"status" yaml:"status" enums:"ACTIVE,DISABLED,DELETED,TEMPORARY"`
	Email         string                `json:"email" yaml:"email"`
	CellPhone     string                `json:"cell_phone" yaml:"cell_phone"`
	Address       string                `json:"address" yaml:"address"`
	CityTitle     string                `json:"city" yaml:"city"`
	CityID        *int                  `json:"city_id" yaml:"city_id"`
	StreetID      *int                  `json:"street_id" yaml:"street_id"`
	Balance       float64               `json:"balance" yaml:"balance"`
	Discount      int                   `json:"discount" yaml:"discount"`
	IsVIP         bool                  `json:"vip" yaml:"vip"`
	InBlacklist   bool                  `json:"in_blacklist" yaml:"in_blacklist"`
	DateRegister  *time.Time            `json:"date_register" yaml:"date_register"`
	LastVisitDate *time.Time            `json:"last_visit_date" yaml:"last_visit_date"`
}

func NewClientView(c entities.Client) ClientView {
	return ClientView{
		ID:            c.ID,
		Name:          toFullName(c.Name),
		Status:        c.Status,
		Email:         c.Email,
		CellPhone:     c.CellPhone,
		Address:       c.Address,
		CityTitle:     c.CityTitle,
		CityID:        c.CityID,
		StreetID:      c.StreetID,
		Balance:       c.Balance,
		Discount:      c.Discount,
		IsVIP:         c.IsVIP,
		InBlacklist:   c.InBlacklist,
		DateRegister:  c.DateRegister,
		LastVisitDate: c.LastVisitDate,
	}
}

// PetView es una mascota.
type PetView struct {
	ID        int                `json:"id" yaml:"id"`
	OwnerID   *int               `json:"owner_id" yaml:"owner_id"`
	TypeID    *int               `json:"type_id" yaml:"type_id"`
	BreedID   *int               `json:"breed_id" yaml:"breed_id"`
	Alias     string             `json:"alias" yaml:"alias"`
	Sex       entities.PetSex    `json:"sex" yaml:"sex" enums:"male,female,castrated,sterilized,unknown"`
	Status    entities.PetStatus `json:"status" yaml:"status" enums:"alive,dead,deleted"`
	Birthday  *time.Time         `json:"birthday" yaml:"birthday"`
	Weight    *float64           `json:"weight" yaml:"weight"`
	Note      string             `json:"note" yaml:"note"`
	DeathDate *time.Time         `json:"death_date" yaml:"death_date"`
}

func NewPetView(p entities.Pet) PetView {
	return PetView{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		TypeID:    p.TypeID,
		BreedID:   p.BreedID,
		Alias:     p.Alias,
		Sex:       p.Sex,
		Status:    p.Status,
		Birthday:  p.Birthday,
		Weight:    p.Weight,
		Note:      p.Note,
		DeathDate: p.DeathDate,
	}
}

// UserView es un usuario de la clínica (médico, recepción...).
type UserView struct {
	ID         int          `json:"id" yaml:"id"`
	Name       fullNameView `json:"name" yaml:"name"`
	Login      string       `json:"login" yaml:"login"`
	Email      string       `json:"email" yaml:"email"`
	PositionID *int         `json:"position_id" yaml:"position_id"`
	RoleID     *int         `json:"role_id" yaml:"role_id"`
	IsActive   bool         `json:"is_active" yaml:"is_active"`
	Nickname   *string      `json:"nickname" yaml:"nickname"`
	SIPNumber  *string      `json:"sip_number" yaml:"sip_number"`
}

func NewUserView(u entities.User) UserView {
	return UserView{
		ID:         u.ID,
		Name:       toFullName(u.Name),
		Login:      u.Login,
		Email:      u.Email,
		PositionID: u.PositionID,
		RoleID:     u.RoleID,
		IsActive:   u.IsActive,
		Nickname:   u.Nickname,
		SIPNumber:  u.SIPNumber,
	}
}

// PositionView es un cargo; admission_length_minutes es null si no tiene duración de turno.
type PositionView struct {
	ID                     int      `json:"id" yaml:"id"`
	Title                  string   `json:"title" yaml:"title"`
	AdmissionLength        *string  `json:"admission_length" yaml:"admission_length"`
	AdmissionLengthMinutes *float64 `json:"admission_length_minutes" yaml:"admission_length_minutes"`
}

func NewPositionView(p entities.UserPosition) PositionView {
	v := PositionView{ID: p.ID, Title: p.Title}
	if p.AdmissionLength != nil {
		s := p.AdmissionLength.String()
		m := p.AdmissionLength.Minutes()
		v.AdmissionLength, v.AdmissionLengthMinutes = &s, &m
	}
	return v
}

// MedcardView es una fila de consultas por cliente.
type MedcardView struct {
	ID                 int                        `json:"id" yaml:"id"`
	DateEdit           *time.Time                 `json:"date_edit" yaml:"date_edit"`
	Status             entities.MedicalCardStatus `json:"status" yaml:"status" enums:"active,inactive,draft,deleted"`
	PetID              int                        `json:"pet_id" yaml:"pet_id"`
	PetAlias           string                     `json:"pet_alias" yaml:"pet_alias"`
	PetSex             entities.PetSex            `json:"pet_sex" yaml:"pet_sex"`
	Doctor             fullNameView               `json:"doctor" yaml:"doctor"`
	Diagnose           *string                    `json:"diagnose" yaml:"diagnose"`
	Description        *string                    `json:"description" yaml:"description"`
	Weight             *float64                   `json:"weight" yaml:"weight"`
	Temperature        *float64                   `json:"temperature" yaml:"temperature"`
	MeetResultTitle    *string                    `json:"meet_result_title" yaml:"meet_result_title"`
	AdmissionTypeTitle *string                    `json:"admission_type_title" yaml:"admission_type_title"`
}

func NewMedcardView(m entities.MedicalCardsByClient) MedcardView {
	return MedcardView{
		ID:                 m.ID,
		DateEdit:           m.DateEdit,
		Status:             m.Status,
		PetID:              m.PetID,
		PetAlias:           m.PetAlias,
		PetSex:             m.PetSex,
		Doctor:             toFullName(m.Doctor),
		Diagnose:           m.Diagnose,
		Description:        m.Description,
		Weight:             m.Weight,
		Temperature:        m.Temperature,
		MeetResultTitle:    m.MeetResultTitle,
		AdmissionTypeTitle: m.AdmissionTypeTitle,
	}
}

// ClientSummaryView junta el cliente con sus mascotas vivas y consultas.
type ClientSummaryView struct {
	Client   ClientView    `json:"client" yaml:"client"`
	Pets     []PetView     `json:"pets" yaml:"pets"`
	Medcards []MedcardView `json:"medcards" yaml:"medcards"`
}

type CityView struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	TypeID *int   `json:"type_id" yaml:"type_id"`
}

type StreetView struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Type   string `json:"type" yaml:"type"`
	CityID *int   `json:"city_id" yaml:"city_id"`
}

type RoleView struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	IsSuper bool   `json:"super" yaml:"super"`
}

type BreedView struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	PetTypeID int    `json:"pet_type_id" yaml:"pet_type_id"`
}

func mapAll[T, V any](in []T, f func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
