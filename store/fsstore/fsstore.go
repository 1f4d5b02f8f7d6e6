// Package fsstore implements store.Store on Cloud Firestore.
package fsstore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ppdb/store"
)

type Store struct {
	client *firestore.Client
}

var _ store.Store = (*Store)(nil)

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) col(name string) *firestore.CollectionRef {
	return s.client.Collection(name)
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return store.ErrNotFound
	}
	return err
}

// updates turns a patch field map into Firestore updates, stamping
// updatedAt with the server time.
func updates(fields map[string]any) []firestore.Update {
	paths := make([]string, 0, len(fields))
	for path := range fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := make([]firestore.Update, 0, len(paths)+1)
	for _, path := range paths {
		out = append(out, firestore.Update{Path: path, Value: fields[path]})
	}
	return append(out, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
}

// decodeAll drains iter into T values, copying the document ID in.
func decodeAll[T any](iter *firestore.DocumentIterator, setID func(*T, string)) ([]*T, error) {
	defer iter.Stop()

	out := []*T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		setID(&item, doc.Ref.ID)
		out = append(out, &item)
	}
	return out, nil
}

func decodeOne[T any](snap *firestore.DocumentSnapshot, setID func(*T, string)) (*T, error) {
	var item T
	if err := snap.DataTo(&item); err != nil {
		return nil, err
	}
	setID(&item, snap.Ref.ID)
	return &item, nil
}

func getByID[T any](ctx context.Context, col *firestore.CollectionRef, id string, setID func(*T, string)) (*T, error) {
	snap, err := col.Doc(id).Get(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return decodeOne(snap, setID)
}

// findOne returns the first document matching field == value.
func findOne[T any](ctx context.Context, col *firestore.CollectionRef, field string, value any, setID func(*T, string)) (*T, error) {
	docs, err := col.Where(field, "==", value).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, store.ErrNotFound
	}
	return decodeOne(docs[0], setID)
}

func deleteByID(ctx context.Context, col *firestore.CollectionRef, id string) error {
	_, err := col.Doc(id).Delete(ctx, firestore.Exists)
	return wrapError(err)
}

func updateByID(ctx context.Context, col *firestore.CollectionRef, id string, fields map[string]any) error {
	_, err := col.Doc(id).Update(ctx, updates(fields))
	return wrapError(err)
}

// newestFirst sorts in memory so equality filters need no composite index.
func newestFirst[T any](items []*T, created func(*T) time.Time) []*T {
	sort.SliceStable(items, func(i, j int) bool {
		return created(items[i]).After(created(items[j]))
	})
	return items
}
