package catalog

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch recharge le catalogue quand le fichier change sur disque.
// Les éditeurs réécrivent souvent le fichier via rename, donc on surveille le
// répertoire et on filtre sur le nom. Retourne une fonction d'arrêt.
func (c *Catalog) Watch(path string) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := c.Reload(path); err != nil {
					log.Printf("⚠️  Rechargement du catalogue échoué: %v", err)
					continue
				}
				log.Printf("✅ Catalogue rechargé (%d produits)", c.Len())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("⚠️  Erreur de surveillance du catalogue: %v", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
