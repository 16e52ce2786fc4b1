// Package weaviate adapts the Weaviate client to the storage port. One Store
// is connected at startup and shared by every repository; the client is
// HTTP-based, so Close releases no connection state.
package weaviate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	wv "github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/fault"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/storekit/admin-backend/internal/storage"
	"github.com/storekit/admin-backend/pkg/logger"
)

// Config holds the store connection settings.
type Config struct {
	Host   string
	Port   string
	Scheme string
}

// Store wraps a connected Weaviate client.
type Store struct {
	client *wv.Client
}

// Connect builds the client and verifies the instance is ready.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	client := wv.New(wv.Config{
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
		Scheme: cfg.Scheme,
	})

	ready, err := client.Misc().ReadyChecker().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach weaviate at %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	if !ready {
		return nil, fmt.Errorf("weaviate at %s:%s is not ready", cfg.Host, cfg.Port)
	}

	logger.Logger.Info().
		Str("host", cfg.Host).
		Str("port", cfg.Port).
		Msg("Connected to Weaviate")

	return &Store{client: client}, nil
}

// Collection returns a handle for one class.
func (s *Store) Collection(name string) storage.Collection {
	return &collection{
		client: s.client,
		class:  name,
		fields: scanFields(name),
	}
}

// Ready reports whether the instance answers its readiness check.
func (s *Store) Ready(ctx context.Context) bool {
	ready, err := s.client.Misc().ReadyChecker().Do(ctx)
	return err == nil && ready
}

// Close is part of the store lifecycle; the HTTP client holds no state.
func (s *Store) Close() error {
	return nil
}

type collection struct {
	client *wv.Client
	class  string
	fields []graphql.Field
}

func (c *collection) Insert(ctx context.Context, props storage.Properties) (string, error) {
	wrapper, err := c.client.Data().Creator().
		WithClassName(c.class).
		WithProperties(map[string]interface{}(props)).
		Do(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to insert %s object: %w", c.class, err)
	}
	return string(wrapper.Object.ID), nil
}

func (c *collection) FetchByID(ctx context.Context, id string) (*storage.Object, error) {
	objects, err := c.client.Data().ObjectsGetter().
		WithClassName(c.class).
		WithID(id).
		Do(ctx)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s object %s: %w", c.class, id, err)
	}
	if len(objects) == 0 {
		return nil, nil
	}

	props, _ := objects[0].Properties.(map[string]interface{})
	return &storage.Object{
		ID:         string(objects[0].ID),
		Properties: sanitize(props),
	}, nil
}

func (c *collection) Update(ctx context.Context, id string, partial storage.Properties) error {
	err := c.client.Data().Updater().
		WithMerge().
		WithClassName(c.class).
		WithID(id).
		WithProperties(map[string]interface{}(partial)).
		Do(ctx)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to update %s object %s: %w", c.class, id, err)
	}
	return nil
}

func (c *collection) Delete(ctx context.Context, id string) error {
	err := c.client.Data().Deleter().
		WithClassName(c.class).
		WithID(id).
		Do(ctx)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to delete %s object %s: %w", c.class, id, err)
	}
	return nil
}

func (c *collection) Scan(ctx context.Context, limit, offset int) ([]storage.Object, error) {
	resp, err := c.client.GraphQL().Get().
		WithClassName(c.class).
		WithFields(c.fields...).
		WithLimit(limit).
		WithOffset(offset).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s objects: %w", c.class, err)
	}
	return c.parseObjects(resp)
}

func (c *collection) NearText(ctx context.Context, query string, limit int) ([]storage.Object, error) {
	nearText := c.client.GraphQL().NearTextArgBuilder().
		WithConcepts([]string{query})

	resp, err := c.client.GraphQL().Get().
		WithClassName(c.class).
		WithFields(c.fields...).
		WithNearText(nearText).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s objects: %w", c.class, err)
	}
	return c.parseObjects(resp)
}

// parseObjects unpacks a GraphQL Get response into storage objects. The
// object key travels in the _additional selection; null properties are
// dropped so absent and null read the same way.
func (c *collection) parseObjects(resp *models.GraphQLResponse) ([]storage.Object, error) {
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("graphql query on %s failed: %s", c.class, resp.Errors[0].Message)
	}

	get, ok := resp.Data["Get"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	rows, _ := get[c.class].([]interface{})

	out := make([]storage.Object, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]interface{})
		if !ok {
			continue
		}

		obj := storage.Object{Properties: storage.Properties{}}
		for key, value := range m {
			if key == "_additional" {
				if add, ok := value.(map[string]interface{}); ok {
					obj.ID, _ = add["id"].(string)
				}
				continue
			}
			if value == nil {
				continue
			}
			obj.Properties[key] = value
		}
		out = append(out, obj)
	}
	return out, nil
}

// sanitize drops null properties from a fetched bag.
func sanitize(props map[string]interface{}) storage.Properties {
	out := make(storage.Properties, len(props))
	for k, v := range props {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

// isStatus reports whether err is a client error with the given HTTP status.
func isStatus(err error, status int) bool {
	var clientErr *fault.WeaviateClientError
	return errors.As(err, &clientErr) && clientErr.StatusCode == status
}
