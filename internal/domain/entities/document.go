package entities

// DocumentType classifies an uploaded medical document
type DocumentType string

const (
	DocumentTypePrescription  DocumentType = "prescription"
	DocumentTypeReport        DocumentType = "report"
	DocumentTypeInvoice       DocumentType = "invoice"
	DocumentTypeMedicalRecord DocumentType = "medical-record"
)

// Valid reports whether t is a known document type
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypePrescription, DocumentTypeReport, DocumentTypeInvoice, DocumentTypeMedicalRecord:
		return true
	}
	return false
}

// Document is a file in the user's health records
type Document struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Type        DocumentType `json:"type" yaml:"type"`
	Date        string       `json:"date" yaml:"date"`
	Doctor      string       `json:"doctor,omitempty" yaml:"doctor"`
	Size        string       `json:"size" yaml:"size"`
	DownloadURL string       `json:"download_url" yaml:"download_url"`
}
