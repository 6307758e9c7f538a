package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

type generateResponse struct {
	Output string `json:"output"`
}

type listResponse struct {
	Total int      `json:"total"`
	Names []string `json:"names"`
}

func main() {
	global := flag.NewFlagSet("schemaforge", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "generate":
		handleGenerate(ctx, client, *baseURL, args[1:])
	case "faq":
		handleFAQ(ctx, client, *baseURL, sub, args[2:])
	case "config":
		handleConfig(ctx, client, *baseURL, sub, args[2:])
	case "preset":
		handlePreset(ctx, client, *baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleGenerate(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	file := fs.String("file", "", "form state JSON file")
	wrap := fs.Bool("wrap", false, "wrap output in a script tag")
	_ = fs.Parse(args)

	if *file == "" {
		log.Fatal("a form state file is required")
	}
	payload, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	url := baseURL + "/schema/generate"
	if *wrap {
		url += "?wrap=script"
	}

	var resp generateResponse
	if err := doJSONRaw(ctx, client, http.MethodPost, url, payload, &resp); err != nil {
		log.Fatalf("generate failed: %v", err)
	}
	fmt.Println(resp.Output)
}

func handleFAQ(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	fs := flag.NewFlagSet("faq "+sub, flag.ExitOnError)
	file := fs.String("file", "", "Q:/A: text file")
	wrap := fs.Bool("wrap", false, "wrap output in a script tag")
	_ = fs.Parse(args)

	if *file == "" {
		log.Fatal("a text file is required")
	}
	text, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	switch sub {
	case "generate":
		url := baseURL + "/faq/generate"
		if *wrap {
			url += "?wrap=script"
		}
		var resp generateResponse
		if err := doJSON(ctx, client, http.MethodPost, url, map[string]string{"text": string(text)}, &resp); err != nil {
			log.Fatalf("faq generate failed: %v", err)
		}
		fmt.Println(resp.Output)
	case "html":
		var resp struct {
			HTML string `json:"html"`
		}
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/faq/html", map[string]string{"text": string(text)}, &resp); err != nil {
			log.Fatalf("faq html failed: %v", err)
		}
		fmt.Println(resp.HTML)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleConfig(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		var resp listResponse
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/configs", nil, &resp); err != nil {
			log.Fatalf("list configs failed: %v", err)
		}
		if resp.Total == 0 {
			fmt.Println("no saved configurations")
			return
		}
		for _, name := range resp.Names {
			fmt.Println(name)
		}
	case "delete":
		fs := flag.NewFlagSet("config delete", flag.ExitOnError)
		name := fs.String("name", "", "configuration name")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("a configuration name is required")
		}
		if err := doJSON(ctx, client, http.MethodDelete, baseURL+"/configs/"+*name, nil, nil); err != nil {
			log.Fatalf("delete config failed: %v", err)
		}
		fmt.Printf("deleted configuration %q\n", *name)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handlePreset(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		var resp listResponse
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/presets", nil, &resp); err != nil {
			log.Fatalf("list presets failed: %v", err)
		}
		if resp.Total == 0 {
			fmt.Println("no saved presets")
			return
		}
		for _, name := range resp.Names {
			fmt.Println(name)
		}
	case "export":
		fs := flag.NewFlagSet("preset export", flag.ExitOnError)
		name := fs.String("name", "", "preset name")
		out := fs.String("out", "", "output path (default: derived filename)")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("a preset name is required")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/presets/"+*name+"/export", nil)
		if err != nil {
			log.Fatalf("build request: %v", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("export preset failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Fatalf("export preset failed: %s", readError(resp.Body))
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			log.Fatalf("read export: %v", err)
		}

		path := *out
		if path == "" {
			path = filenameFromDisposition(resp.Header.Get("Content-Disposition"), *name+"_preset.json")
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("exported preset %q to %s\n", *name, path)
	case "import":
		fs := flag.NewFlagSet("preset import", flag.ExitOnError)
		file := fs.String("file", "", "preset JSON file")
		overwrite := fs.Bool("overwrite", false, "overwrite an existing preset with the same name")
		_ = fs.Parse(args)
		if *file == "" {
			log.Fatal("a preset file is required")
		}
		payload, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("read %s: %v", *file, err)
		}

		url := baseURL + "/presets/import"
		if *overwrite {
			url += "?overwrite=true"
		}
		var rec struct {
			Name string `json:"name"`
		}
		if err := doJSONRaw(ctx, client, http.MethodPost, url, payload, &rec); err != nil {
			log.Fatalf("import preset failed: %v", err)
		}
		fmt.Printf("imported preset %q\n", rec.Name)
	case "delete":
		fs := flag.NewFlagSet("preset delete", flag.ExitOnError)
		name := fs.String("name", "", "preset name")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("a preset name is required")
		}
		if err := doJSON(ctx, client, http.MethodDelete, baseURL+"/presets/"+*name, nil, nil); err != nil {
			log.Fatalf("delete preset failed: %v", err)
		}
		fmt.Printf("deleted preset %q\n", *name)
	default:
		printUsage()
		os.Exit(1)
	}
}

func doJSON(ctx context.Context, client *http.Client, method, url string, payload, out any) error {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = b
	}
	return doJSONRaw(ctx, client, method, url, body, out)
}

func doJSONRaw(ctx context.Context, client *http.Client, method, url string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s", readError(resp.Body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readError(r io.Reader) string {
	var e struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(r)
	if err := json.Unmarshal(raw, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(raw))
}

func filenameFromDisposition(header, def string) string {
	const marker = `filename="`
	i := strings.Index(header, marker)
	if i < 0 {
		return def
	}
	rest := header[i+len(marker):]
	j := strings.Index(rest, `"`)
	if j < 0 {
		return def
	}
	return rest[:j]
}

func printUsage() {
	fmt.Println(`schemaforge CLI

usage:
  cli [-api URL] generate -file state.json [-wrap]
  cli [-api URL] faq generate -file faq.txt [-wrap]
  cli [-api URL] faq html -file faq.txt
  cli [-api URL] config list
  cli [-api URL] config delete -name NAME
  cli [-api URL] preset list
  cli [-api URL] preset export -name NAME [-out FILE]
  cli [-api URL] preset import -file FILE [-overwrite]
  cli [-api URL] preset delete -name NAME`)
}
