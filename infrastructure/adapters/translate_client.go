package adapters

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/translate"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
)

type translateClient struct {
	translateSvc *translate.Translate
	logger       outbound.LoggerPort
}

func NewTranslateClient(translateSvc *translate.Translate, logger outbound.LoggerPort) outbound.TranslatorPort {
	return &translateClient{
		translateSvc: translateSvc,
		logger:       logger,
	}
}

func (c *translateClient) Translate(ctx context.Context, params outbound.TranslateParams) (string, error) {
	out, err := c.translateSvc.TextWithContext(ctx, &translate.TextInput{
		Text:               aws.String(params.Text),
		SourceLanguageCode: aws.String(params.SourceLanguage),
		TargetLanguageCode: aws.String(params.TargetLanguage),
	})
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to translate text", map[string]interface{}{
			"sourceLanguage": params.SourceLanguage,
			"targetLanguage": params.TargetLanguage,
		})
		return "", err
	}

	return aws.StringValue(out.TranslatedText), nil
}
