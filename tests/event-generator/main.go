package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/config"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/internal/publisher"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

type ArticleEvent struct {
	EventType   string `json:"eventType"`
	ArticleID   int64  `json:"articleId"`
	ArticleName string `json:"articleName"`
	OldStock    int    `json:"oldStock"`
	NewStock    int    `json:"newStock"`
}

var articleNames = []string{"Keyboard", "Mouse", "Monitor", "Headset", "Webcam"}

// lifecycle генерирует события одного заказа в порядке жизненного цикла.
func lifecycle(userID int64) []entities.DomainEvent {
	orderID := uuid.NewString()
	cents := rand.Intn(50000) + 100
	now := time.Now()
	total := entities.MustParseMoney(fmt.Sprintf("%d.%02d", cents/100, cents%100))

	events := []entities.DomainEvent{{
		Type: entities.EventOrderCreated, OrderID: orderID, UserID: userID,
		TotalAmount: total, ItemCount: rand.Intn(4) + 1, OccurredAt: now,
	}}

	next := []entities.EventType{entities.EventOrderConfirmed, entities.EventOrderShipped, entities.EventOrderDelivered}
	steps := rand.Intn(len(next) + 1)
	for _, t := range next[:steps] {
		events = append(events, entities.DomainEvent{Type: t, OrderID: orderID, UserID: userID, OccurredAt: now})
	}
	if steps < len(next) && rand.Intn(2) == 0 {
		events = append(events, entities.DomainEvent{
			Type: entities.EventOrderCancelled, OrderID: orderID, UserID: userID,
			Reason: "Cancelled by user", OccurredAt: now,
		})
	}
	return events
}

func stockChanged() ArticleEvent {
	id := rand.Intn(len(articleNames))
	oldStock := rand.Intn(40)
	return ArticleEvent{
		EventType:   string(entities.EventStockChanged),
		ArticleID:   int64(id + 1),
		ArticleName: articleNames[id],
		OldStock:    oldStock,
		NewStock:    max(oldStock-rand.Intn(15), 0),
	}
}

func main() {
	godotenv.Load()
	cfg := config.New().Kafka

	orders := &kafka.Writer{Addr: kafka.TCP(cfg.Brokers...), Topic: cfg.OrderTopic, Balancer: &kafka.Hash{}}
	articles := &kafka.Writer{Addr: kafka.TCP(cfg.Brokers...), Topic: cfg.ArticleTopic, Balancer: &kafka.Hash{}}
	defer orders.Close()
	defer articles.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			events := lifecycle(int64(rand.Intn(10) + 1))
			msgs := make([]kafka.Message, 0, len(events))
			for _, e := range events {
				msg, err := publisher.EncodeEvent(e)
				if err != nil {
					log.Println("failed to encode event:", err)
					continue
				}
				msgs = append(msgs, msg)
			}
			if err := orders.WriteMessages(ctx, msgs...); err != nil {
				log.Println("failed to write order events:", err)
				continue
			}
			log.Println("order events generated", events[0].OrderID, len(msgs))

			stock := stockChanged()
			data, _ := json.Marshal(stock)
			if err := articles.WriteMessages(ctx, kafka.Message{Key: []byte(strconv.FormatInt(stock.ArticleID, 10)), Value: data}); err != nil {
				log.Println("failed to write article event:", err)
				continue
			}
			log.Println("stock changed", stock.ArticleName, stock.OldStock, "->", stock.NewStock)
		case <-ctx.Done():
			return
		}
	}
}
