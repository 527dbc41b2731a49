package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
// The use case layer depends on it instead of on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error rolls back, nil commits.
	// Repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	StoreRepo() StoreRepository
	ReviewRepo() ReviewRepository
}
