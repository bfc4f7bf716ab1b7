package whatsapp

import (
	"encoding/json"
	"fmt"

	"github.com/kubaxi/service-funnel/internal/domain/booking"
)

// Fallback literals substituted for absent fields. These are part of the
// customer-facing message format, not placeholders.
const (
	fallbackNA          = "N/A"
	fallbackNoComments  = "Sin comentarios"
	fallbackNoDescrip   = "Sin descripción"
	fallbackNewCustomer = "Nuevo Cliente"
	fallbackUncomputed  = "Por calcular"
)

// Compose renders a booking intent into the canonical WhatsApp message text.
// It is total: absent optional fields become fallback literals, never errors.
func Compose(intent booking.Intent) string {
	switch v := intent.(type) {
	case booking.TaxiTrip:
		return composeTaxiTrip(v)
	case booking.ExcursionBooking:
		return composeExcursion(v)
	case booking.PackageBooking:
		return composePackage(v)
	case booking.CustomRequest:
		return composeCustom(v)
	default:
		// Unreachable for the closed sum; mirror a raw dump rather than
		// dropping the request on the floor.
		raw, _ := json.MarshalIndent(intent, "", "  ")
		return string(raw)
	}
}

func composeTaxiTrip(t booking.TaxiTrip) string {
	return fmt.Sprintf(`🚕 *RESERVA DE TAXI - KUBAXI*

📋 *Información del Cliente:*
👤 Nombre: %s
📱 Teléfono: %s

🗺️ *Detalles del Viaje:*
📍 Origen: %s
📍 Destino: %s
📅 Fecha: %s
⏰ Hora: %s
👥 Pasajeros: %s
🚕 Tipo: %s
💰 Precio estimado: %s
📏 Distancia: %s
⏱️ Tiempo estimado: %s`,
		orElse(t.CustomerName, fallbackNewCustomer),
		orElse(t.Phone, fallbackNA),
		orElse(t.Origin, fallbackNA),
		orElse(t.Destination, fallbackNA),
		orElse(t.Date, fallbackNA),
		orElse(t.Time, fallbackNA),
		orElse(t.Passengers, fallbackNA),
		orElse(t.TaxiType, fallbackNA),
		orElse(t.Price, fallbackUncomputed),
		orElse(t.Distance, fallbackUncomputed),
		orElse(t.EstimatedTime, fallbackUncomputed),
	)
}

func composeExcursion(e booking.ExcursionBooking) string {
	return fmt.Sprintf(`🏝️ *RESERVA DE EXCURSIÓN - KUBAXI*

📋 *Información del Cliente:*
👤 Nombre: %s
📧 Email: %s
📱 Teléfono: %s

🎯 *Detalles de la Excursión:*
🏝️ Excursión: %s
📅 Fecha: %s
👥 Personas: %s

💬 *Comentarios:*
%s`,
		orElse(e.Name, fallbackNA),
		orElse(e.Email, fallbackNA),
		orElse(e.Phone, fallbackNA),
		orElse(e.Excursion, fallbackNA),
		orElse(e.Date, fallbackNA),
		orElse(e.People, fallbackNA),
		orElse(e.Comments, fallbackNoComments),
	)
}

func composePackage(p booking.PackageBooking) string {
	return fmt.Sprintf(`📦 *RESERVA DE PAQUETE - KUBAXI*

📋 *Información del Cliente:*
👤 Nombre: %s
📧 Email: %s
📱 Teléfono: %s

📦 *Detalles del Paquete:*
🎁 Paquete: %s
📅 Fecha: %s
👥 Personas: %s

💬 *Comentarios:*
%s`,
		orElse(p.Name, fallbackNA),
		orElse(p.Email, fallbackNA),
		orElse(p.Phone, fallbackNA),
		orElse(p.Package, fallbackNA),
		orElse(p.Date, fallbackNA),
		orElse(p.People, fallbackNA),
		orElse(p.Comments, fallbackNoComments),
	)
}

func composeCustom(c booking.CustomRequest) string {
	return fmt.Sprintf(`✨ *SOLICITUD PERSONALIZADA - KUBAXI*

📋 *Información del Cliente:*
👤 Nombre: %s
📧 Email: %s
📱 Teléfono: %s
👥 Viajeros: %s

🗓️ *Detalles del Viaje:*
📅 Fecha: %s
⏱️ Duración: %s

📝 *Descripción:*
%s`,
		orElse(c.Name, fallbackNA),
		orElse(c.Email, fallbackNA),
		orElse(c.Phone, fallbackNA),
		orElse(c.Travelers, fallbackNA),
		orElse(c.Date, fallbackNA),
		orElse(c.Duration, fallbackNA),
		orElse(c.Description, fallbackNoDescrip),
	)
}

func orElse(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
