package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// ErrGeneration marks speech-rendering failures. The chat flow recovers by
// returning the textual reply without an audio handle.
var ErrGeneration = errors.New("speech synthesis failed")

// Synthesizer renders reply text to a retrievable audio handle.
type Synthesizer interface {
	Render(ctx context.Context, text string) (string, error)
}

// GoogleSynthesizer renders replies to MP3 files in the audio directory via
// Google Cloud Text-to-Speech and returns /audio/<id>.mp3 handles.
type GoogleSynthesizer struct {
	client  *texttospeech.Client
	dir     string
	timeout time.Duration
}

func NewGoogleSynthesizer(ctx context.Context, credentialsFile, dir string, timeout time.Duration) (*GoogleSynthesizer, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create text-to-speech client: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir %s: %w", dir, err)
	}
	return &GoogleSynthesizer{client: client, dir: dir, timeout: timeout}, nil
}

func (s *GoogleSynthesizer) Render(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "en-US",
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	audioID := uuid.New().String()
	path := filepath.Join(s.dir, audioID+".mp3")
	if err := os.WriteFile(path, resp.AudioContent, 0o644); err != nil {
		return "", fmt.Errorf("%w: write audio file: %v", ErrGeneration, err)
	}
	return "/audio/" + audioID + ".mp3", nil
}

func (s *GoogleSynthesizer) Close() error {
	return s.client.Close()
}
