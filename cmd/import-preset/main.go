package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"schemaforge/internal/preset"
	"schemaforge/pkg/database"
	"schemaforge/pkg/storage"
)

func main() {
	var (
		file      = flag.String("file", "", "preset JSON file to import")
		overwrite = flag.Bool("overwrite", false, "overwrite an existing preset with the same name")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("a preset file is required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	store := preset.NewStore(storage.NewSQLiteKV(db))
	rec, err := store.Import(ctx, raw, *overwrite)
	if err != nil {
		if errors.Is(err, preset.ErrExists) {
			log.Fatalf("preset already exists; rerun with -overwrite")
		}
		log.Fatalf("import preset failed: %v", err)
	}

	log.Printf("imported preset %q", rec.Name)
}
