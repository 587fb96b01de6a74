package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"tuppershop_back_end/internal/models"
)

// Data est le format du fichier catalogue (data/catalog.json).
// Les mots-clés de recherche associent une phrase (en minuscules) à une liste
// de noms de produits — ce sont des données éditoriales, pas des données dérivées.
type Data struct {
	Products       []models.Product    `json:"products"`
	Categories     []models.Category   `json:"categories"`
	SearchKeywords map[string][]string `json:"search_keywords"`
}

// Catalog est la vue immuable du catalogue pour le reste du backend.
// Reload remplace l'ensemble des données de façon atomique ; les paniers déjà
// enregistrés ne sont pas affectés (copies figées).
type Catalog struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
	keywords   map[string][]string
	byID       map[string]int
	byName     map[string]int
}

// Load lit et valide le fichier catalogue.
func Load(path string) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Reload(path); err != nil {
		return nil, err
	}
	return c, nil
}

// FromData construit un catalogue depuis des données déjà en mémoire.
func FromData(data Data) (*Catalog, error) {
	c := &Catalog{}
	if err := c.replace(data); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload relit le fichier et remplace le catalogue courant.
// En cas d'erreur, le catalogue précédent reste en place.
func (c *Catalog) Reload(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("lecture du catalogue %s: %v", path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("décodage du catalogue %s: %v", path, err)
	}

	return c.replace(data)
}

func (c *Catalog) replace(data Data) error {
	byID := make(map[string]int, len(data.Products))
	byName := make(map[string]int, len(data.Products))

	for i, p := range data.Products {
		if p.ID == "" {
			return fmt.Errorf("produit %q sans identifiant", p.Name)
		}
		if _, exists := byID[p.ID]; exists {
			return fmt.Errorf("identifiant produit dupliqué: %s", p.ID)
		}
		if p.Price < 0 {
			return fmt.Errorf("prix négatif pour le produit %s", p.ID)
		}
		if p.Discount != 0 && !p.IsOffer {
			return fmt.Errorf("produit %s: discount présent sans is_offer", p.ID)
		}
		byID[p.ID] = i
		byName[p.Name] = i
	}

	// Un nom de produit inconnu dans les mots-clés est un bug de données, pas
	// une erreur d'exécution : on le signale et il ne matchera simplement jamais.
	for keyword, names := range data.SearchKeywords {
		for _, name := range names {
			if _, ok := byName[name]; !ok {
				log.Printf("⚠️  Mot-clé %q: produit inconnu %q", keyword, name)
			}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = data.Products
	c.categories = data.Categories
	c.keywords = data.SearchKeywords
	c.byID = byID
	c.byName = byName
	return nil
}

// Products retourne une copie de la liste des produits.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID retourne le produit correspondant à l'identifiant.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// ProductByName retourne le produit portant exactement ce nom.
func (c *Catalog) ProductByName(name string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byName[name]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// ByCategory retourne les produits d'une catégorie (filtre d'égalité simple).
func (c *Catalog) ByCategory(slug string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Product
	for _, p := range c.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out
}

// Offers retourne les produits en promotion.
func (c *Catalog) Offers() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Product
	for _, p := range c.products {
		if p.IsOffer {
			out = append(out, p)
		}
	}
	return out
}

// Categories retourne une copie de la liste des catégories.
func (c *Catalog) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Keywords retourne la table des mots-clés de recherche.
func (c *Catalog) Keywords() map[string][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keywords
}

// Len retourne le nombre de produits du catalogue.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
