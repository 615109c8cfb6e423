package entities

import (
	"context"
	"time"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

type Role struct {
	rec record

	ID      int
	Name    string
	IsSuper bool
}

var RoleKind = fetch.Kind[Role]{Route: gateway.RouteRole, Construct: NewRole}

func NewRole(gw gateway.Gateway, raw payload.Raw) (Role, error) {
	r := payload.NewReader("Role", raw)
	role := Role{
		ID:      r.Int("id"),
		Name:    r.String("name"),
		IsSuper: r.Bool("super"),
	}
	if err := r.Err(); err != nil {
		return Role{}, err
	}
	role.rec = newRecord(gw, "Role", raw)
	return role, nil
}

func (r Role) Self(ctx context.Context) (Role, error) {
	return resolveKey(ctx, r.rec, "id", RoleKind)
}

// UserPosition es el cargo del usuario (médico, cirujano, ...).
type UserPosition struct {
	rec record

	ID    int
	Title string
	// Columna TIME, default "00:30:00". "00:00:00" => nil.
	AdmissionLength *time.Duration
}

var UserPositionKind = fetch.Kind[UserPosition]{Route: gateway.RouteUserPosition, Construct: NewUserPosition}

func NewUserPosition(gw gateway.Gateway, raw payload.Raw) (UserPosition, error) {
	r := payload.NewReader("UserPosition", raw)
	p := UserPosition{
		ID:              r.Int("id"),
		Title:           r.String("title"),
		AdmissionLength: r.OptionalDuration("admission_length", true),
	}
	if err := r.Err(); err != nil {
		return UserPosition{}, err
	}
	p.rec = newRecord(gw, "UserPosition", raw)
	return p, nil
}

func NewUserPositions(gw gateway.Gateway, raws []payload.Raw) ([]UserPosition, error) {
	return fetch.FromRawSequence(gw, UserPositionKind, raws)
}

func (p UserPosition) Self(ctx context.Context) (UserPosition, error) {
	return resolveKey(ctx, p.rec, "id", UserPositionKind)
}

// Users devuelve los usuarios con este cargo.
func (p UserPosition) Users(ctx context.Context) ([]User, error) {
	return resolveChildren(ctx, p.rec, "id", UserKind, "position_id", nil)
}

type User struct {
	rec record

	ID         int
	Name       FullName
	Login      string
	PositionID *int
	Email      string
	Phone      string
	CellPhone  string
	Address    string
	RoleID     *int
	IsActive   bool
	// Si el usuario cobra porcentaje de las ventas.
	CalcPercents           bool
	Nickname               *string
	LastChangePasswordDate *time.Time
	IsLimited              bool
	CarrotquestID          *string
	SIPNumber              *string
	INN                    string

	// Vienen dentro del payload solo si se pidieron; si están, Role/Position no hacen request.
	PreloadedRole     Embedded[Role]
	PreloadedPosition Embedded[UserPosition]
}

var UserKind = fetch.Kind[User]{Route: gateway.RouteUser, Construct: NewUser}

// NewUser no lee "passwd": el hash no se expone en el record.
func NewUser(gw gateway.Gateway, raw payload.Raw) (User, error) {
	r := payload.NewReader("User", raw)
	u := User{
		ID: r.Int("id"),
		Name: FullName{
			First:  r.String("first_name"),
			Middle: r.String("middle_name"),
			Last:   r.String("last_name"),
		},
		Login:                  r.String("login"),
		PositionID:             r.OptionalID("position_id"),
		Email:                  r.String("email"),
		Phone:                  r.String("phone"),
		CellPhone:              r.String("cell_phone"),
		Address:                r.String("address"),
		RoleID:                 r.OptionalID("role_id"),
		IsActive:               r.Bool("is_active"),
		CalcPercents:           r.Bool("calc_percents"),
		Nickname:               r.OptionalString("nickname"),
		LastChangePasswordDate: r.OptionalDateTime("last_change_pwd_date"),
		IsLimited:              r.Bool("is_limited"),
		CarrotquestID:          r.OptionalString("carrotquest_id"),
		SIPNumber:              r.OptionalString("sip_number"),
		INN:                    r.String("user_inn"),
		PreloadedRole: embedded(r, "role", func(raw payload.Raw) (Role, error) {
			return NewRole(gw, raw)
		}),
		PreloadedPosition: embedded(r, "position", func(raw payload.Raw) (UserPosition, error) {
			return NewUserPosition(gw, raw)
		}),
	}
	if err := r.Err(); err != nil {
		return User{}, err
	}
	u.rec = newRecord(gw, "User", raw)
	return u, nil
}

func NewUsers(gw gateway.Gateway, raws []payload.Raw) ([]User, error) {
	return fetch.FromRawSequence(gw, UserKind, raws)
}

func (u User) Self(ctx context.Context) (User, error) {
	return resolveKey(ctx, u.rec, "id", UserKind)
}

// Position usa el cargo precargado si vino; si no, lo pide por position_id.
func (u User) Position(ctx context.Context) (*UserPosition, error) {
	if u.PreloadedPosition.Value != nil {
		p := *u.PreloadedPosition.Value
		return &p, nil
	}
	return resolveRef(ctx, u.rec, "position_id", UserPositionKind)
}

func (u User) Role(ctx context.Context) (*Role, error) {
	if u.PreloadedRole.Value != nil {
		role := *u.PreloadedRole.Value
		return &role, nil
	}
	return resolveRef(ctx, u.rec, "role_id", RoleKind)
}
