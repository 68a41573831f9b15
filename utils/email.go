package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// TicketReceiptData feeds the receipt email template.
type TicketReceiptData struct {
	TicketCode    string
	MovieTitle    string
	Screening     string
	Seat          string
	KindLabel     string
	Price         string
	Paid          string
	Change        string
	ChangeLines   []string
	PointsEarned  int
	PointsSpent   int
	PaymentMethod string
}

const ticketReceiptTemplate = `<html><body>
<h2>Your ticket {{.TicketCode}}</h2>
<p>{{.MovieTitle}} — {{.Screening}}</p>
<p>Seat <b>{{.Seat}}</b> · {{.KindLabel}}</p>
<table>
  <tr><td>Price</td><td>{{.Price}}</td></tr>
  <tr><td>Paid ({{.PaymentMethod}})</td><td>{{.Paid}}</td></tr>
  <tr><td>Change</td><td>{{.Change}}</td></tr>
</table>
{{if .ChangeLines}}<ul>{{range .ChangeLines}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .PointsSpent}}<p>Points redeemed: {{.PointsSpent}}</p>{{end}}
{{if .PointsEarned}}<p>Points earned: {{.PointsEarned}}</p>{{end}}
<p>Show the attached QR code at the gate.</p>
</body></html>`

// SendTicketReceiptEmail sends the HTML receipt with the gate QR attached.
// Async so the purchase response is not delayed by SMTP.
func SendTicketReceiptEmail(to string, data TicketReceiptData, qrPNG []byte) {
	go func() {
		tmpl, err := template.New("receipt").Parse(ticketReceiptTemplate)
		if err != nil {
			log.Printf("receipt template: %v", err)
			return
		}
		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("receipt render: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")
		if host == "" || from == "" {
			log.Println("SMTP not configured, skipping receipt email")
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("Ticket %s", data.TicketCode))
		m.SetBody("text/html", body.String())
		if len(qrPNG) > 0 {
			m.Attach("gate-qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("receipt email to %s: %v", to, err)
		}
	}()
}

// SendRentalConfirmation sends a plain-text rental confirmation.
func SendRentalConfirmation(to, renterName, roomName, window, price string) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		port := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")
		if host == "" || from == "" {
			log.Println("SMTP not configured, skipping rental email")
			return
		}

		e := email.NewEmail()
		e.From = from
		e.To = []string{to}
		e.Subject = "Room rental confirmed"
		e.Text = []byte(fmt.Sprintf(
			"Hi %s,\n\nYour rental of %s is confirmed.\nWindow: %s\nPrice: %s\n",
			renterName, roomName, window, price,
		))
		if err := e.Send(host+":"+port, smtp.PlainAuth("", username, password, host)); err != nil {
			log.Printf("rental email to %s: %v", to, err)
		}
	}()
}
