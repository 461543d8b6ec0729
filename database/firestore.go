// File: database/firestore.go
package database

import (
	"context"
	"log"

	"rockgrip/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitFirestore initializes the Firebase app and its Firestore client.
func InitFirestore() {
	ctx := context.Background()

	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	var fbConfig *firebase.Config
	if projectID := config.AppConfig.FirebaseProjectID; projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	FirestoreClient = client
}
