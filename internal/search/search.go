package search

import (
	"strings"

	"tuppershop_back_end/internal/catalog"
	"tuppershop_back_end/internal/models"
)

// DefaultLimit est le nombre maximum de suggestions retournées.
const DefaultLimit = 6

// MinQueryLength est la taille minimale d'une requête. En dessous, aucune
// suggestion n'est proposée (trop de bruit sur un seul caractère).
const MinQueryLength = 2

// Index répond aux requêtes de suggestion sur le catalogue courant.
// Le matching est entièrement en mémoire et synchrone : chaque frappe
// remplace simplement le résultat précédent côté client.
type Index struct {
	catalog *catalog.Catalog
	limit   int
}

func New(c *catalog.Catalog, limit int) *Index {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Index{catalog: c, limit: limit}
}

// MatchQuery retourne les produits correspondant à une requête libre :
// dédupliqués par identifiant, matches directs d'abord, plafonnés à la limite.
//
// Les mots-clés matchent par inclusion bidirectionnelle : une requête courte
// ("frigo") attrape une phrase éditoriale plus longue ("set frigo"), et une
// requête plus longue que la phrase l'attrape aussi. C'est volontairement
// permissif — la table de mots-clés est petite et choisie à la main.
func (idx *Index) MatchQuery(query string) []models.Product {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return []models.Product{}
	}
	lowerQuery := strings.ToLower(query)

	// Passe mots-clés : collecte des noms de produits associés.
	var matchedNames []string
	for keyword, productNames := range idx.catalog.Keywords() {
		if strings.Contains(keyword, lowerQuery) || strings.Contains(lowerQuery, keyword) {
			matchedNames = append(matchedNames, productNames...)
		}
	}

	// Passe directe : sous-chaîne dans nom, description, catégorie ou taille.
	// Une taille absente ("") ne matche jamais.
	var direct []models.Product
	for _, p := range idx.catalog.Products() {
		if strings.Contains(strings.ToLower(p.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(p.Description), lowerQuery) ||
			strings.Contains(strings.ToLower(p.Category), lowerQuery) ||
			(p.Size != "" && strings.Contains(strings.ToLower(p.Size), lowerQuery)) {
			direct = append(direct, p)
		}
	}

	// Résolution des noms vers le catalogue ; les noms orphelins sont
	// silencieusement ignorés (bug de données, pas d'erreur).
	var fromKeywords []models.Product
	for _, name := range matchedNames {
		if p, ok := idx.catalog.ProductByName(name); ok {
			fromKeywords = append(fromKeywords, p)
		}
	}

	// Fusion et déduplication par identifiant, première occurrence gagnante.
	seen := make(map[string]bool)
	results := make([]models.Product, 0, idx.limit)
	for _, p := range append(direct, fromKeywords...) {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		results = append(results, p)
		if len(results) == idx.limit {
			break
		}
	}

	return results
}
