package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/KajamHamza/Blocks/internal/entities"
	"github.com/KajamHamza/Blocks/internal/storage/postgres"
)

var opts = struct {
	Seed               string `long:"seed" env:"SEED" default:"seed.json" description:"path to seed file"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"migrations/postgres" description:"postgres migrations directory"`
}{}

type seed struct {
	Profiles []struct {
		Address string `json:"address"`
		Handle  string `json:"handle"`
		Bio     string `json:"bio"`
		Avatar  string `json:"avatar"`
	} `json:"profiles"`
	Posts []struct {
		AuthorAddress string `json:"authorAddress"`
		Content       string `json:"content"`
		ImageURL      string `json:"imageUrl"`
	} `json:"posts"`
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seed2db"
	parser.LongDescription = "Demo data importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("seed2db started")
	logrus.Infof("%+v", opts)

	b, err := os.ReadFile(opts.Seed)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read seed file")
	}

	var data seed

	if err := json.Unmarshal(b, &data); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal seed file")
	}

	s := postgres.New(mustGetDB())

	t := time.Now().UTC()

	logrus.Info("import profiles")
	for i, v := range data.Profiles {
		if err := s.CreateProfile(context.Background(), &entities.Profile{
			ID:               uuid.NewString(),
			Address:          v.Address,
			Handle:           v.Handle,
			Bio:              v.Bio,
			Avatar:           v.Avatar,
			UserCreditRating: entities.DefaultCreditRating,
			CreatedAt:        t,
			UpdatedAt:        t,
		}); err != nil {
			logrus.WithError(err).Fatal("failed to put profile into db")
		}

		if i%20 == 0 {
			logrus.Infof("%d of %d profiles imported", i+1, len(data.Profiles))
		}
	}

	logrus.Info("import posts")
	for i, v := range data.Posts {
		if err := s.CreatePost(context.Background(), &entities.Post{
			ID:               uuid.NewString(),
			AuthorAddress:    v.AuthorAddress,
			Content:          v.Content,
			ImageURL:         v.ImageURL,
			CreatedAt:        t,
			UserCreditRating: entities.DefaultCreditRating,
		}); err != nil {
			logrus.WithError(err).Fatal("failed to put post into db")
		}

		if i%20 == 0 {
			logrus.Infof("%d of %d posts imported", i+1, len(data.Posts))
		}
	}

	logrus.Info("done")
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
