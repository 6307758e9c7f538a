package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"schemaforge/internal/preset"
	"schemaforge/pkg/database"
	"schemaforge/pkg/storage"
)

func main() {
	var (
		name = flag.String("name", "", "preset name to export")
		out  = flag.String("out", "", "output path (default: derived filename in the current directory)")
	)
	flag.Parse()

	if *name == "" {
		log.Fatal("a preset name is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	store := preset.NewStore(storage.NewSQLiteKV(db))
	data, filename, err := store.Export(ctx, *name)
	if err != nil {
		log.Fatalf("export preset failed: %v", err)
	}

	path := *out
	if path == "" {
		path = filename
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}

	log.Printf("exported preset %q to %s", *name, path)
}
