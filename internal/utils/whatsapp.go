package utils

import (
	"fmt"
	"net/url"
	"strings"

	"tuppershop_back_end/internal/models"
)

// BuildOrderMessage construit le message de commande envoyé sur WhatsApp.
// Le paiement et la confirmation se font manuellement dans la conversation.
func BuildOrderMessage(items []models.CartItem, total, discount int) string {
	var b strings.Builder
	b.WriteString("🛒 Nouvelle commande\n\n")

	for _, item := range items {
		b.WriteString(fmt.Sprintf("• %dx %s", item.CartQuantity, item.Name))
		if item.Size != "" {
			b.WriteString(" (" + item.Size + ")")
		}
		b.WriteString(fmt.Sprintf(" — %d₹\n", item.Price*item.CartQuantity))
	}

	b.WriteString(fmt.Sprintf("\nSous-total : %d₹\n", total))
	if discount > 0 {
		b.WriteString(fmt.Sprintf("Remise : -%d₹\n", discount))
	}
	b.WriteString(fmt.Sprintf("Total à payer : %d₹", total-discount))
	return b.String()
}

// WhatsAppLink construit le lien wa.me prérempli avec le message de commande.
func WhatsAppLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
