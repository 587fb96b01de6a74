package models

// CartItem est une copie figée du produit au moment de l'ajout, plus la
// quantité choisie. Ce n'est jamais une référence vers le catalogue : une mise
// à jour de prix côté catalogue ne change pas les articles déjà dans le panier.
type CartItem struct {
	Product
	CartQuantity int `json:"cart_quantity"`
}
