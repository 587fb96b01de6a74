package models

// Product représente un article du catalogue statique.
// Le catalogue est fourni en lecture seule : le backend ne le modifie jamais.
// Les champs optionnels gardent leur valeur zéro quand ils sont absents ;
// une taille absente ("") ne matche jamais une recherche.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Size          string   `json:"size,omitempty"`
	QuantityLabel string   `json:"quantity_label,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	InStock       bool     `json:"in_stock"`
	IsOffer       bool     `json:"is_offer,omitempty"`
	Discount      int      `json:"discount,omitempty"`
}
