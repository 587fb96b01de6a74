package cart

import (
	"context"
	"encoding/json"
	"time"

	"tuppershop_back_end/internal/models"
)

// KeyPrefix est l'espace de noms des paniers dans le stockage durable.
const KeyPrefix = "cart:"

// Store maintient la liste des articles d'un panier de session et la persiste
// en un seul bloc JSON sous une clé fixe. Chaque sauvegarde remplace l'état
// complet (pas de fusion partielle, dernier écrivain gagnant).
type Store struct {
	storage  Storage
	key      string
	ttl      time.Duration
	notifier *Notifier
}

// New construit un Store pour une session donnée.
// ttl = 0 signifie que le panier ne expire jamais.
func New(storage Storage, sessionID string, ttl time.Duration) *Store {
	return &Store{
		storage:  storage,
		key:      KeyPrefix + sessionID,
		ttl:      ttl,
		notifier: NewNotifier(),
	}
}

// Key retourne la clé de stockage du panier (aussi le canal pub/sub).
func (s *Store) Key() string {
	return s.key
}

// Notifier retourne le gestionnaire d'abonnements local du panier.
func (s *Store) Notifier() *Notifier {
	return s.notifier
}

// Load retourne le panier courant. Une clé absente ou un contenu illisible
// dégrade silencieusement en panier vide : jamais d'erreur pour l'appelant.
func (s *Store) Load(ctx context.Context) []models.CartItem {
	data, err := s.storage.Read(ctx, s.key)
	if err != nil || data == "" {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

// Save persiste le panier complet puis notifie les abonnés.
// En cas d'échec d'écriture, le panier en mémoire reste valide et l'erreur
// remonte à l'appelant sans notification.
func (s *Store) Save(ctx context.Context, items []models.CartItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.storage.Write(ctx, s.key, string(payload), s.ttl); err != nil {
		return err
	}

	s.storage.Publish(ctx, s.key, EventUpdated)
	s.notifier.notify(EventUpdated)
	return nil
}

// AddItem ajoute un produit au panier. Si le produit y est déjà, sa quantité
// est incrémentée ; sinon une copie figée du produit est ajoutée en fin de
// liste avec une quantité de 1.
func (s *Store) AddItem(ctx context.Context, product models.Product) ([]models.CartItem, error) {
	items := s.Load(ctx)

	found := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].CartQuantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Product: product, CartQuantity: 1})
	}

	return items, s.Save(ctx, items)
}

// RemoveItem retire un produit du panier. Un identifiant absent est un no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) ([]models.CartItem, error) {
	items := s.Load(ctx)

	updated := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != productID {
			updated = append(updated, item)
		}
	}

	return updated, s.Save(ctx, updated)
}

// SetQuantity fixe la quantité d'un article. Une quantité nulle ou négative
// équivaut à RemoveItem ; un identifiant absent laisse le panier inchangé.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) ([]models.CartItem, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	items := s.Load(ctx)
	for i := range items {
		if items[i].ID == productID {
			items[i].CartQuantity = quantity
			break
		}
	}

	return items, s.Save(ctx, items)
}

// Clear efface complètement l'état persistant du panier.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, s.key); err != nil {
		return err
	}

	s.storage.Publish(ctx, s.key, EventCleared)
	s.notifier.notify(EventCleared)
	return nil
}

// Total calcule le montant du panier (prix × quantité, arithmétique entière).
// Fonction pure, aucun effet de bord.
func Total(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.CartQuantity
	}
	return total
}

// Count calcule le nombre total d'articles du panier. Fonction pure.
func Count(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.CartQuantity
	}
	return count
}
