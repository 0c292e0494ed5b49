package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/middleware"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GeminiCompleter は Google Gemini API を使う Completer の実装です
type GeminiCompleter struct {
	client *genai.Client
	cfg    config.AIConfig
}

func NewGeminiCompleter(ctx context.Context, cfg config.AIConfig) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiCompleter{client: client, cfg: cfg}, nil
}

func (c *GeminiCompleter) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Complete は JSON モードで生成を行い、応答テキストをそのまま返します
func (c *GeminiCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	logger := middleware.GetLogger(ctx)

	modelName := req.Model
	if modelName == "" {
		modelName = c.cfg.Model
	}
	gm := c.client.GenerativeModel(modelName)

	var systemParts []genai.Part
	var userParts []genai.Part
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			systemParts = append(systemParts, genai.Text(m.Content))
		default:
			userParts = append(userParts, genai.Text(m.Content))
		}
	}
	if len(userParts) == 0 {
		return "", errors.New("completion request has no user message")
	}
	if len(systemParts) > 0 {
		gm.SystemInstruction = &genai.Content{Parts: systemParts}
	}

	temp := req.Temperature
	if temp <= 0 {
		temp = c.cfg.Temperature
	}
	gm.GenerationConfig = genai.GenerationConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
	if req.Schema != nil {
		gm.GenerationConfig.ResponseSchema = toGenaiSchema(req.Schema)
	}

	resp, err := gm.GenerateContent(ctx, userParts...)
	if err != nil {
		classified := classifyCompletionError(ctx, err)
		logger.Warn("Gemini GenerateContent failed", "model", modelName, "error", classified)
		return "", classified
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{StatusCode: http.StatusBadGateway, Message: "empty response from gemini"}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		} else {
			logger.Debug("Gemini response part was not text", "type", fmt.Sprintf("%T", part))
		}
	}
	if resp.UsageMetadata != nil {
		logger.Info("Gemini completion finished",
			"model", modelName,
			"prompt_tokens", resp.UsageMetadata.PromptTokenCount,
			"candidate_tokens", resp.UsageMetadata.CandidatesTokenCount,
		)
	}
	return text.String(), nil
}

// toGenaiSchema は JSONSchema を genai.Schema に変換します。
// genai のスキーマは長さ・件数の制約を持てないので description に書き添える
func toGenaiSchema(s *JSONSchema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Description: schemaDescription(s),
		Required:    s.Required,
	}
	switch s.Type {
	case SchemaObject:
		out.Type = genai.TypeObject
	case SchemaArray:
		out.Type = genai.TypeArray
	default:
		out.Type = genai.TypeString
	}
	if s.Items != nil {
		out.Items = toGenaiSchema(s.Items)
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func schemaDescription(s *JSONSchema) string {
	var notes []string
	if s.Description != "" {
		notes = append(notes, s.Description)
	}
	if s.MaxLength > 0 {
		notes = append(notes, fmt.Sprintf("at most %d characters", s.MaxLength))
	}
	if s.MinItems > 0 || s.MaxItems > 0 {
		notes = append(notes, fmt.Sprintf("between %d and %d items", s.MinItems, s.MaxItems))
	}
	return strings.Join(notes, "; ")
}

// classifyCompletionError は SDK のエラーを、タイムアウトなら context.DeadlineExceeded、
// それ以外は UpstreamError に揃えます
func classifyCompletionError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.Code, Message: apiErr.Message, Err: err}
	}

	if st, ok := status.FromError(err); ok {
		if st.Code() == codes.DeadlineExceeded {
			return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
		return &UpstreamError{StatusCode: grpcCodeToHTTPStatus(st.Code()), Message: st.Message(), Err: err}
	}

	return &UpstreamError{StatusCode: http.StatusInternalServerError, Message: err.Error(), Err: err}
}

func grpcCodeToHTTPStatus(code codes.Code) int {
	switch code {
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
