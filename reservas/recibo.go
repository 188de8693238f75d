package reservas

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"reservago/middleware"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"
)

func hmacSecret() []byte {
	if s := os.Getenv("RECEIPT_HMAC_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("reservago-recibo")
}

// GenerateQRPayload returns a signed payload: reservaId|escenarioId|fecha|ts|sig.
// Venue staff can verify the signature on-site without a network round-trip.
func GenerateQRPayload(reservaID, escenarioID, fecha string) string {
	timestamp := time.Now().Unix()
	data := fmt.Sprintf("%s|%s|%s|%d", reservaID, escenarioID, fecha, timestamp)

	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintRecibo streams a PDF receipt for a reservation, with a signed QR for
// on-site check-in. Owner or elevated role only.
func PrintRecibo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		log.Printf("JWT validation error: %v", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reserva, err := findReserva(ctx, ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Reserva no encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if reserva.Usuario != claims.UserID && !middleware.IsElevated(claims.Roles) {
		http.Error(w, "No tienes permiso para ver esta reserva", http.StatusForbidden)
		return
	}

	hidratar(ctx, reserva)

	fecha := reserva.Fecha.Format("2006-01-02")
	qrPNG, err := qrcode.Encode(GenerateQRPayload(reserva.ReservaID, reserva.EscenarioID, fecha), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Comprobante de Reserva")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Reserva: %s", reserva.ReservaID))
	pdf.Ln(8)
	if reserva.Cancha != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Escenario: %s", reserva.Cancha.Nombre))
		pdf.Ln(8)
		pdf.Cell(0, 8, fmt.Sprintf("Direccion: %s", reserva.Cancha.Direccion))
		pdf.Ln(8)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Fecha: %s  %s - %s", fecha, reserva.HoraInicio, reserva.HoraFin))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", reserva.Total))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Estado: %s", reserva.Estado))
	pdf.Ln(12)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 80, pdf.GetY(), 50, 50, false, opts, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=reserva-%s.pdf", reserva.ReservaID))
	if err := pdf.Output(w); err != nil {
		log.Printf("PDF output error: %v", err)
	}
}
