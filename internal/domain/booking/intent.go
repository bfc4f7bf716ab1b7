package booking

// Kind discriminates the booking-intent variants. The values double as the
// wire tags the web client sends.
type Kind string

const (
	KindTaxiTrip  Kind = "reserva_taxi"
	KindExcursion Kind = "excursion"
	KindPackage   Kind = "paquete"
	KindCustom    Kind = "personalizado"
)

// Intent is the normalized payload describing what the visitor wants to
// request, independent of which form produced it. It is a closed sum: the
// four variants below are the only implementations.
type Intent interface {
	IntentKind() Kind
}

// Contact holds the customer identity fields shared by most variants.
// Any field may be empty; the composer substitutes fallbacks.
type Contact struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Phone string `json:"telefono"`
}

// TaxiTrip is a point-to-point taxi request. Route, time, and quote fields
// are carried pre-rendered as display strings; empty strings mean the field
// was never computed or collected.
type TaxiTrip struct {
	CustomerName  string `json:"nombre"`
	Phone         string `json:"telefono"`
	Origin        string `json:"origen"`
	Destination   string `json:"destino"`
	Date          string `json:"fecha"`
	Time          string `json:"hora"`
	Passengers    string `json:"pasajeros"`
	TaxiType      string `json:"tipo_taxi"`
	Price         string `json:"precio_estimado"`
	Distance      string `json:"distancia"`
	EstimatedTime string `json:"tiempo_estimado"`
}

// IntentKind implements Intent.
func (TaxiTrip) IntentKind() Kind { return KindTaxiTrip }

// ExcursionBooking is a reservation request for a catalog excursion.
type ExcursionBooking struct {
	Contact
	Excursion string `json:"excursion"`
	Date      string `json:"fecha"`
	People    string `json:"personas"`
	Comments  string `json:"comentarios"`
}

// IntentKind implements Intent.
func (ExcursionBooking) IntentKind() Kind { return KindExcursion }

// PackageBooking is a reservation request for a travel package.
type PackageBooking struct {
	Contact
	Package  string `json:"paquete"`
	Date     string `json:"fecha"`
	People   string `json:"personas"`
	Comments string `json:"comentarios"`
}

// IntentKind implements Intent.
func (PackageBooking) IntentKind() Kind { return KindPackage }

// CustomRequest is a free-form trip request.
type CustomRequest struct {
	Contact
	Travelers   string `json:"viajeros"`
	Date        string `json:"fecha"`
	Duration    string `json:"duracion"`
	Description string `json:"descripcion"`
}

// IntentKind implements Intent.
func (CustomRequest) IntentKind() Kind { return KindCustom }
