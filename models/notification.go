// File: models/notification.go
package models

import "time"

// SalesNotification is a back-office alert recorded for each captured lead.
type SalesNotification struct {
	ID        string    `bson:"id" json:"id" firestore:"id"`
	LeadID    string    `bson:"leadId" json:"leadId" firestore:"leadId"`
	Title     string    `bson:"title" json:"title" firestore:"title"`
	Body      string    `bson:"body" json:"body" firestore:"body"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt" firestore:"createdAt"`
}

// LeadNotifyPayload is the task payload enqueued after a successful write.
type LeadNotifyPayload struct {
	LeadID string `json:"leadId"`
	Name   string `json:"name"`
	City   string `json:"city"`
}
