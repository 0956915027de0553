package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"

	"innkeeper/utils"
)

const (
	maxUploadBytes  = 5 * 1024 * 1024
	uploadExtension = ".wav"
)

// STTHandler transcribes uploaded voice messages so they can be fed back
// into the chat endpoint as text.
type STTHandler struct {
	CredentialsFile string
}

func NewSTTHandler(credentialsFile string) *STTHandler {
	return &STTHandler{CredentialsFile: credentialsFile}
}

// HandleTranscribe accepts a WAV upload and returns its transcription:
// POST /stt.
func (h *STTHandler) HandleTranscribe(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Audio file is required", err.Error())
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != uploadExtension {
		utils.JSONError(c, http.StatusBadRequest, "Invalid file type",
			fmt.Sprintf("expected %s, got %s", uploadExtension, ext))
		return
	}

	pcm, err := normalizeUpload(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Audio conversion failed", err.Error())
		return
	}

	ctx := c.Request.Context()
	var opts []option.ClientOption
	if h.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(h.CredentialsFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to initialize speech client", err.Error())
		return
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: pcm},
		},
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Speech recognition failed", err.Error())
		return
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	c.JSON(http.StatusOK, gin.H{"transcription": strings.TrimSpace(transcript.String())})
}

// normalizeUpload stores the upload in a temp file and resamples it with
// ffmpeg to 16kHz mono LINEAR16, the format the recognizer is configured for.
func normalizeUpload(upload io.Reader) ([]byte, error) {
	input, err := os.CreateTemp("", "stt-in-*.wav")
	if err != nil {
		return nil, err
	}
	defer os.Remove(input.Name())
	defer input.Close()

	if _, err := io.Copy(input, io.LimitReader(upload, maxUploadBytes)); err != nil {
		return nil, err
	}

	output, err := os.CreateTemp("", "stt-out-*.wav")
	if err != nil {
		return nil, err
	}
	defer os.Remove(output.Name())
	defer output.Close()

	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", input.Name(),
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		output.Name(),
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}

	return os.ReadFile(output.Name())
}
