package utils

import (
	"fmt"
	"html"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SendContactEmail transmet un message du formulaire de contact à la boutique.
func SendContactEmail(name, replyTo, message string) error {
	msg := mail.NewMsg()

	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(os.Getenv("CONTACT_EMAIL")); err != nil {
		return err
	}
	if err := msg.ReplyTo(replyTo); err != nil {
		return err
	}
	msg.Subject("Nouveau message depuis la boutique — " + name)
	msg.SetBodyString(mail.TypeTextHTML, contactHTML(name, replyTo, message))

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du message de contact de", replyTo)
	return client.DialAndSend(msg)
}

func contactHTML(name, email, message string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Nouveau message client</h2>
		<p><strong>Nom :</strong> %s</p>
		<p><strong>Email :</strong> %s</p>
		<p style="white-space: pre-wrap; border-left: 3px solid #ddd; padding-left: 10px;">%s</p>
	</div>
</body>
</html>`, html.EscapeString(name), html.EscapeString(email), html.EscapeString(message))
}
