package formatter

import (
	"bytes"

	"github.com/unidoc/unioffice/document"

	"docqa-backend/internal/entity"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (mf *DOCXFormatter) Format(chat *entity.Chat) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titleRun := titlePar.AddRun()
	titleRun.AddText(chat.Title)

	for _, question := range chat.Questions {
		questionPar := doc.AddParagraph()
		questionPar.SetStyle("Heading2")
		questionPar.AddRun().AddText(question.Query)

		answerPar := doc.AddParagraph()
		answerPar.AddRun().AddText(question.Answer)

		if len(question.Sources) > 0 {
			sourcesPar := doc.AddParagraph()
			sourcesPar.SetStyle("Heading3")
			sourcesPar.AddRun().AddText("Sources")

			for _, source := range question.Sources {
				sourcePar := doc.AddParagraph()
				sourcePar.AddRun().AddText(source.FileName + ": " + source.Preview)
			}
		}
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (mf *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
