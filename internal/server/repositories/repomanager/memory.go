package repomanager

import "github.com/dmitrijs2005/bloglist/internal/server/repositories/memory"

// NewMemoryRepositoryManager returns an empty process-local store.
func NewMemoryRepositoryManager() RepositoryManager {
	return memory.NewStore()
}
