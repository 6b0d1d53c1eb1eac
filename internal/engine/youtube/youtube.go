package youtube

// Native YouTube transcript and metadata fetching, split by responsibility:
//   innertube.go — Innertube API constants, client contexts, and HTTP primitives
//   watchpage.go — watch page scraping and ytInitialPlayerResponse extraction
//   player.go    — player response types, ANDROID /player fetch, track selection
//   panel.go     — engagement panel /next → /get_transcript fallback
//   timedtext.go — caption track XML fetching and parsing
//   metadata.go  — video metadata from the player response or page HTML
//   transcript.go — the Fetch orchestrator and response envelope
//   videoid.go   — video ID extraction from URLs
