package email

import (
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/utils"
)

// Sender delivers booking notifications. Delivery is best-effort: callers
// fire it in a goroutine and never fail a request over it.
type Sender interface {
	SendBookingConfirmation(guest *entity.Guest, booking *entity.Booking, rooms []*entity.Room)
	SendStaffNotification(guest *entity.Guest, booking *entity.Booking)
}

type Client struct {
	cfg utils.EmailConfig
	log *zap.Logger
}

func NewClient(cfg utils.EmailConfig, log *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		log: log.With(zap.String("component", "email")),
	}
}

func (c *Client) send(to, subject, htmlBody string) error {
	m := mail.NewMsg()
	if err := m.From(c.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.cfg.Host,
		mail.WithPort(c.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.cfg.User),
		mail.WithPassword(c.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.cfg.Host,
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client (host=%s port=%d): %w", c.cfg.Host, c.cfg.Port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail (host=%s port=%d): %w", c.cfg.Host, c.cfg.Port, err)
	}

	return nil
}

// SendBookingConfirmation mails the guest their booking details. Failures
// are logged and swallowed.
func (c *Client) SendBookingConfirmation(guest *entity.Guest, booking *entity.Booking, rooms []*entity.Room) {
	if !c.cfg.Enabled {
		return
	}

	subject := fmt.Sprintf("Confirmación de Reserva %s", booking.BookingCode)
	body := confirmationHTML(guest, booking, rooms)

	if err := c.send(guest.Email, subject, body); err != nil {
		c.log.Warn("Booking confirmation email failed",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
			zap.String("to", guest.Email),
		)
		return
	}

	c.log.Info("Booking confirmation sent",
		zap.String("booking_code", booking.BookingCode),
		zap.String("to", guest.Email),
	)
}

// SendStaffNotification mails the front-desk inbox about a new booking.
// Failures are logged and swallowed.
func (c *Client) SendStaffNotification(guest *entity.Guest, booking *entity.Booking) {
	if !c.cfg.Enabled || c.cfg.StaffInbox == "" {
		return
	}

	subject := fmt.Sprintf("Nueva reserva %s", booking.BookingCode)
	body := fmt.Sprintf(`<p>Nueva reserva registrada.</p>
<ul>
	<li><strong>Código:</strong> %s</li>
	<li><strong>Huésped:</strong> %s (%s)</li>
	<li><strong>Check-in:</strong> %s</li>
	<li><strong>Check-out:</strong> %s</li>
	<li><strong>Total:</strong> $%s</li>
</ul>`,
		booking.BookingCode,
		guest.FullName(),
		guest.Email,
		booking.CheckInDate.Format("02/01/2006"),
		booking.CheckOutDate.Format("02/01/2006"),
		booking.TotalPrice.StringFixed(2),
	)

	if err := c.send(c.cfg.StaffInbox, subject, body); err != nil {
		c.log.Warn("Staff notification email failed",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
		)
	}
}

func confirmationHTML(guest *entity.Guest, booking *entity.Booking, rooms []*entity.Room) string {
	var roomRows strings.Builder
	for _, room := range rooms {
		fmt.Fprintf(&roomRows, `
		<tr>
			<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">%s</td>
			<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">%s</td>
			<td style="padding: 10px; border-bottom: 1px solid #e0e0e0; text-align: right;">$%s</td>
		</tr>`,
			room.RoomNumber, room.Type, room.PricePerNight.StringFixed(2))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; margin: 0 auto;">
		<tr>
			<td style="background-color: #2c3e50; padding: 30px 20px; text-align: center;">
				<h1 style="color: #ffffff; margin: 0; font-size: 24px;">¡Reserva Confirmada!</h1>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px;">
				<p>Hola %s,</p>
				<p>Tu reserva <strong>%s</strong> ha sido confirmada.</p>
				<table width="100%%" cellpadding="0" cellspacing="0">
					<tr>
						<td style="padding: 6px 0;"><strong>Check-in:</strong></td>
						<td style="padding: 6px 0; text-align: right;">%s</td>
					</tr>
					<tr>
						<td style="padding: 6px 0;"><strong>Check-out:</strong></td>
						<td style="padding: 6px 0; text-align: right;">%s</td>
					</tr>
					<tr>
						<td style="padding: 6px 0;"><strong>Huéspedes:</strong></td>
						<td style="padding: 6px 0; text-align: right;">%d</td>
					</tr>
				</table>
				<h3 style="margin-top: 25px;">Habitaciones</h3>
				<table width="100%%" cellpadding="0" cellspacing="0" style="border: 1px solid #e0e0e0;">
					<thead>
						<tr style="background-color: #2c3e50; color: #ffffff;">
							<th style="padding: 10px; text-align: left;">Habitación</th>
							<th style="padding: 10px; text-align: left;">Tipo</th>
							<th style="padding: 10px; text-align: right;">Precio/noche</th>
						</tr>
					</thead>
					<tbody>%s</tbody>
				</table>
				<p style="margin-top: 25px; font-size: 18px;"><strong>Total: $%s</strong></p>
				<p style="color: #999; font-size: 12px;">Presente este correo al momento del check-in. Check-in: 15:00 hrs, check-out: 12:00 hrs.</p>
			</td>
		</tr>
	</table>
</body>
</html>`,
		guest.FirstName,
		booking.BookingCode,
		booking.CheckInDate.Format("02/01/2006"),
		booking.CheckOutDate.Format("02/01/2006"),
		booking.NumberOfGuests,
		roomRows.String(),
		booking.TotalPrice.StringFixed(2),
	)
}
