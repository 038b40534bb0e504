package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kurlez/doctalk/internal/config"
	"github.com/kurlez/doctalk/internal/pipeline"
	"github.com/kurlez/doctalk/internal/tts"
)

func main() {
	// Command line flags
	var (
		inputFlag    = flag.String("input", "", "Document file(s) or directories to convert (newline-separated)")
		outputFlag   = flag.String("output", "", "Output directory (overrides config)")
		configFlag   = flag.String("config", "", "Path to config file")
		voiceFlag    = flag.String("voice", "", "TTS voice name or full voice ID (overrides config)")
		rateFlag     = flag.String("rate", "", "Speech rate adjustment, e.g. +10% (overrides config)")
		coverFlag    = flag.String("cover", "", "Cover art image to embed in generated MP3s")
		playlistFlag = flag.Bool("playlist", false, "Create M3U playlist file")
		noTagsFlag   = flag.Bool("no-tags", false, "Skip writing ID3 tags")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "Scan documents without converting")
		listFlag     = flag.Bool("list-voices", false, "List available voice names and exit")
	)

	flag.Parse()

	if *listFlag {
		fmt.Println("Available voices:")
		for _, name := range tts.VoiceNames() {
			id, _ := tts.VoiceID(name)
			fmt.Printf("  %-10s %s\n", name, id)
		}
		return
	}

	// CLI mode - require an input path
	if *inputFlag == "" && flag.NArg() == 0 {
		fmt.Println("Doctalk - Turn documents into narrated audio")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  doctalk -input <PATH> [options]")
		fmt.Println("  doctalk <PATH> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: doctalk-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *voiceFlag != "" {
		settings.Voice = *voiceFlag
	}
	if *rateFlag != "" {
		settings.Rate = *rateFlag
	}
	if *coverFlag != "" {
		settings.CoverArtPath = *coverFlag
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}
	if *noTagsFlag {
		settings.ModifyTags = false
	}

	// Get input paths
	inputs := *inputFlag
	if inputs == "" && flag.NArg() > 0 {
		inputs = flag.Arg(0)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	engine := tts.NewEdge(tts.EdgeConfig{
		Voice: settings.Voice,
		Rate:  settings.Rate,
	})

	// Create manager with progress callback
	manager := pipeline.NewManager(settings, engine, func(event pipeline.ProgressEvent) {
		if event.Level == pipeline.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case pipeline.LevelError:
			prefix = "❌ "
		case pipeline.LevelWarning:
			prefix = "⚠️  "
		case pipeline.LevelSuccess:
			prefix = "✅ "
		case pipeline.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	// Initialize
	fmt.Println("🔊 Doctalk")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(ctx, inputs); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not converting]")
		return
	}

	// Start conversion
	fmt.Println("\n🎙  Starting conversion...")
	fmt.Println()

	if err := manager.Convert(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nConversion cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during conversion: %v\n", err)
		os.Exit(1)
	}

	doneDocs, totalDocs, doneChunks, totalChunks := manager.GetProgress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Converted %d/%d documents (%d/%d chunks)\n", doneDocs, totalDocs, doneChunks, totalChunks)
}
