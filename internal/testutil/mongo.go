//go:build integration

// Package testutil provides the shared MongoDB testcontainer used by the
// repository integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoContainer wraps a running MongoDB testcontainer.
type MongoContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongo starts a MongoDB container. Prefer SharedMongo with TestMain so
// a package's tests reuse one container instead of paying the startup cost
// per test.
func StartMongo(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("starting MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("reading MongoDB connection string: %w", err)
	}

	return &MongoContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoContainer) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminating MongoDB container: %w", err)
	}
	return nil
}

var (
	sharedMongo     *MongoContainer
	sharedMongoErr  error
	sharedMongoOnce sync.Once
	sharedMongoMu   sync.RWMutex
)

// SharedMongo returns the package-wide MongoDB container, starting it on
// first use.
func SharedMongo(ctx context.Context) (*MongoContainer, error) {
	sharedMongoOnce.Do(func() {
		sharedMongoMu.Lock()
		defer sharedMongoMu.Unlock()
		sharedMongo, sharedMongoErr = StartMongo(ctx)
	})

	sharedMongoMu.RLock()
	defer sharedMongoMu.RUnlock()
	if sharedMongoErr != nil {
		return nil, sharedMongoErr
	}
	return sharedMongo, nil
}

// SharedMongoURI returns the connection URI of the shared container. Panics
// when SharedMongo has not run yet.
func SharedMongoURI() string {
	sharedMongoMu.RLock()
	defer sharedMongoMu.RUnlock()
	if sharedMongo == nil {
		panic("shared MongoDB container not started, call SharedMongo first")
	}
	return sharedMongo.URI
}

// RunWithMongo is the TestMain body for packages with MongoDB integration
// tests:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongo(context.Background(), m))
//	}
func RunWithMongo(ctx context.Context, m *testing.M) int {
	if _, err := SharedMongo(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	sharedMongoMu.Lock()
	defer sharedMongoMu.Unlock()
	if sharedMongo != nil {
		if err := sharedMongo.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return code
}

// DatabaseName derives a MongoDB database name unique to the given test, so
// tests sharing one container never see each other's tariff tables.
func DatabaseName(t *testing.T) string {
	t.Helper()
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(t.Name())
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
