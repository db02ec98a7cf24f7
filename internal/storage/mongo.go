package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Arjit-Adhikari/qr-order/internal/config"
	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/models"
)

const (
	menuCollection  = "menu_items"
	orderCollection = "orders"
)

type MongoStore struct {
	client *mongo.Client
	menu   *mongo.Collection
	orders *mongo.Collection
	log    *logger.Logger
}

func NewMongoStore(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*MongoStore, error) {
	log.LogDatabase("CONNECT", "mongo", "Connecting to "+cfg.Database)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	store := &MongoStore{
		client: client,
		menu:   db.Collection(menuCollection),
		orders: db.Collection(orderCollection),
		log:    log,
	}

	if err := store.ensureIndexes(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	log.LogDatabase("CONNECT", "mongo", "Connection established and indexes ready")
	return store, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.menu.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "isAvailable", Value: 1}, {Key: "category", Value: 1}, {Key: "name", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = s.orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (s *MongoStore) ListAvailableMenu(ctx context.Context) ([]models.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := s.menu.Find(ctx, bson.M{"isAvailable": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

func (s *MongoStore) CountMenu(ctx context.Context) (int64, error) {
	count, err := s.menu.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}

func (s *MongoStore) InsertMenuItems(ctx context.Context, items []models.MenuItem) (int, error) {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}

	result, err := s.menu.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert menu items: %w", err)
	}

	s.log.LogDatabase("INSERT", menuCollection, fmt.Sprintf("Inserted %d items", len(result.InsertedIDs)))
	return len(result.InsertedIDs), nil
}

// ReplaceMenu wipes the collection and inserts the new items. The two steps
// are not atomic: a concurrent read between them observes an empty menu.
// Multi-document transactions need a replica set, which the usual standalone
// deployment of this service does not have.
func (s *MongoStore) ReplaceMenu(ctx context.Context, items []models.MenuItem) (int, error) {
	if _, err := s.menu.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("failed to clear menu: %w", err)
	}
	return s.InsertMenuItems(ctx, items)
}

func (s *MongoStore) InsertOrder(ctx context.Context, order *models.Order) error {
	if _, err := s.orders.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	s.log.LogDatabase("INSERT", orderCollection, "Order "+order.OrderID+" saved")
	return nil
}

func (s *MongoStore) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (s *MongoStore) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}

	result, err := s.orders.UpdateOne(ctx, bson.M{"order_id": orderID}, update)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	s.log.LogDatabase("UPDATE", orderCollection, fmt.Sprintf("Order %s set to %s", orderID, status))
	return nil
}

func (s *MongoStore) DeleteOrder(ctx context.Context, orderID string) error {
	result, err := s.orders.DeleteOne(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	s.log.LogDatabase("DELETE", orderCollection, "Order "+orderID+" removed")
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
