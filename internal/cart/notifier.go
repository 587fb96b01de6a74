package cart

import "sync"

// Événements diffusés après chaque sauvegarde réussie.
const (
	EventUpdated = "updated"
	EventCleared = "cleared"
)

// Listener reçoit l'événement de changement de panier.
type Listener func(event string)

// Notifier gère les abonnements locaux aux changements du panier.
// Les couches de présentation s'abonnent pour rafraîchir leurs compteurs ;
// la synchronisation inter-onglets passe par le pub/sub du Storage.
type Notifier struct {
	mu        sync.Mutex
	seq       int
	listeners map[int]Listener
}

func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]Listener)}
}

// Subscribe enregistre un listener et retourne la fonction de désabonnement.
func (n *Notifier) Subscribe(l Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	id := n.seq
	n.listeners[id] = l
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

func (n *Notifier) notify(event string) {
	n.mu.Lock()
	listeners := make([]Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		listeners = append(listeners, l)
	}
	n.mu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}
