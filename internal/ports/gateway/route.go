package gateway

// Route es el path del modelo en /rest/api/{route}.
type Route string

const (
	RouteClient               Route = "client"
	RoutePet                  Route = "pet"
	RoutePetType              Route = "petType"
	RouteBreed                Route = "breed"
	RouteUser                 Route = "user"
	RouteUserPosition         Route = "userPosition"
	RouteRole                 Route = "role"
	RouteCity                 Route = "city"
	RouteCityType             Route = "cityType"
	RouteStreet               Route = "street"
	RouteComboManualItem      Route = "comboManualItem"
	RouteMedicalCard          Route = "medicalCards"
	RouteMedicalCardsByClient Route = "MedicalCards/MedicalcardsDataByClient"
)

// DataKey es la key bajo "data" donde la API devuelve los items.
func (r Route) DataKey() string {
	switch r {
	case RouteMedicalCardsByClient:
		return "medicalcards"
	default:
		return string(r)
	}
}
