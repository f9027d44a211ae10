package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
)

// The product copy is Brazilian Portuguese, matching the plann.er web app.

var tripConfirmationTmpl = template.Must(template.New("trip_confirmation").Parse(strings.TrimSpace(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6">
    <p>Você solicitou a criação de uma viagem para <strong>{{.Destination}}</strong> nas datas de <strong>{{.StartsAt}}</strong> até <strong>{{.EndsAt}}</strong>.</p>
    <br>
    <p>
        <a href="{{.ConfirmURL}}">Confirmar viagem</a>
    </p>
    <br>
    <p>Caso você não saiba do que se trata esse e-mail, apenas ignore-o.</p>
</div>`)))

var participantInviteTmpl = template.Must(template.New("participant_invite").Parse(strings.TrimSpace(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6">
    <p>Você foi convidado(a) para participar de uma viagem para <strong>{{.Destination}}</strong> nas datas de <strong>{{.StartsAt}}</strong> até <strong>{{.EndsAt}}</strong>.</p>
    <br>
    <p>Para confirmar sua presença na viagem, clique no link abaixo:</p>
    <br>
    <p>
        <a href="{{.ConfirmURL}}">Confirmar presença</a>
    </p>
    <br>
    <p>Caso você não saiba do que se trata esse e-mail, apenas ignore-o.</p>
</div>`)))

// tmplData is the shared template context for both message kinds.
type tmplData struct {
	Destination string
	StartsAt    string
	EndsAt      string
	ConfirmURL  string
}

// TripConfirmation composes the e-mail asking the trip owner to confirm the
// trip they just created. confirmURL points at the trip confirmation endpoint.
func TripConfirmation(trip domain.Trip, owner domain.Participant, confirmURL string) (Message, error) {
	html, err := render(tripConfirmationTmpl, trip, confirmURL)
	if err != nil {
		return Message{}, fmt.Errorf("mail.TripConfirmation: %w", err)
	}
	return Message{
		To:      Address{Name: owner.Name, Email: owner.Email},
		Subject: "Confirme sua viagem para " + trip.Destination,
		HTML:    html,
	}, nil
}

// ParticipantInvite composes the e-mail asking an invitee to confirm their
// presence on a trip. confirmURL points at the participant confirmation
// endpoint.
func ParticipantInvite(trip domain.Trip, p domain.Participant, confirmURL string) (Message, error) {
	html, err := render(participantInviteTmpl, trip, confirmURL)
	if err != nil {
		return Message{}, fmt.Errorf("mail.ParticipantInvite: %w", err)
	}
	return Message{
		To:      Address{Name: p.Name, Email: p.Email},
		Subject: "Confirme sua presença na viagem para " + trip.Destination,
		HTML:    html,
	}, nil
}

func render(tmpl *template.Template, trip domain.Trip, confirmURL string) (string, error) {
	var b strings.Builder
	err := tmpl.Execute(&b, tmplData{
		Destination: trip.Destination,
		StartsAt:    FormatLongDate(trip.StartsAt),
		EndsAt:      FormatLongDate(trip.EndsAt),
		ConfirmURL:  confirmURL,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// ptBRMonths are the lowercase month names used in Brazilian Portuguese dates.
var ptBRMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatLongDate renders t in the long pt-BR form used in the e-mail bodies,
// e.g. "31 de agosto de 2026".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), ptBRMonths[t.Month()-1], t.Year())
}
