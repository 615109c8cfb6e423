package entities

import (
	"context"
	"strconv"

	"vetmanager-api-gateway/internal/domain/fetch"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// Combo manual de resultados de consulta en Vetmanager.
const MeetResultComboManualID = 2

// ComboManualItem es un valor de un "combo manual" (lista configurable por la clínica).
type ComboManualItem struct {
	rec record

	ID            int
	ComboManualID int
	Title         string
	Value         string
	DopParam1     string
	DopParam2     string
	DopParam3     string
	IsActive      bool
}

var ComboManualItemKind = fetch.Kind[ComboManualItem]{Route: gateway.RouteComboManualItem, Construct: NewComboManualItem}

func NewComboManualItem(gw gateway.Gateway, raw payload.Raw) (ComboManualItem, error) {
	r := payload.NewReader("ComboManualItem", raw)
	it := ComboManualItem{
		ID:            r.Int("id"),
		ComboManualID: r.Int("combo_manual_id"),
		Title:         r.String("title"),
		Value:         r.String("value"),
		DopParam1:     payload.ToString(r.OptionalString("dop_param1")),
		DopParam2:     payload.ToString(r.OptionalString("dop_param2")),
		DopParam3:     payload.ToString(r.OptionalString("dop_param3")),
		IsActive:      r.Bool("is_active"),
	}
	if err := r.Err(); err != nil {
		return ComboManualItem{}, err
	}
	it.rec = newRecord(gw, "ComboManualItem", raw)
	return it, nil
}

func (it ComboManualItem) Self(ctx context.Context) (ComboManualItem, error) {
	return resolveKey(ctx, it.rec, "id", ComboManualItemKind)
}

// GetAdmissionTypeByID: el tipo de admisión se guarda como id del item.
func GetAdmissionTypeByID(ctx context.Context, gw gateway.Gateway, id int) (ComboManualItem, error) {
	return fetch.GetByID(ctx, gw, ComboManualItemKind, id)
}

// GetMeetResultByValue: el resultado de consulta se guarda como value dentro del combo 2.
func GetMeetResultByValue(ctx context.Context, gw gateway.Gateway, value int) (ComboManualItem, error) {
	filter := gateway.Filter{}.
		WhereInt("combo_manual_id", MeetResultComboManualID).
		Where("value", strconv.Itoa(value))
	return fetch.GetOne(ctx, gw, ComboManualItemKind, filter)
}

// resolveAdmissionType / resolveMeetResult: FK nulo => nil sin request.
func resolveAdmissionType(ctx context.Context, r record, field string) (*ComboManualItem, error) {
	return resolveRef(ctx, r, field, ComboManualItemKind)
}

func resolveMeetResult(ctx context.Context, r record, field string) (*ComboManualItem, error) {
	v, err := r.ref(field)
	if err != nil || v == nil {
		return nil, err
	}
	gw, err := r.attached()
	if err != nil {
		return nil, err
	}
	it, err := GetMeetResultByValue(ctx, gw, *v)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
