package viewstate

import "github.com/zatekoja/healthapp/backend/internal/domain/entities"

// FilterDocuments keeps documents of the given type, or all of them
func FilterDocuments(docs []entities.Document, tag string) []entities.Document {
	return FilterByStatus(docs, tag, func(d entities.Document) entities.DocumentType { return d.Type })
}

var documentTypeStyles = map[entities.DocumentType]StatusStyle{
	entities.DocumentTypePrescription:  {Label: "Prescription", Color: "#10B981", Icon: "FileText"},
	entities.DocumentTypeReport:        {Label: "Report", Color: "#3B82F6", Icon: "FileText"},
	entities.DocumentTypeInvoice:       {Label: "Invoice", Color: "#F59E0B", Icon: "FileText"},
	entities.DocumentTypeMedicalRecord: {Label: "Medical Record", Color: "#8B5CF6", Icon: "FileText"},
}

// DocumentTypeStyle maps a document type to its chip label and colour
func DocumentTypeStyle(t entities.DocumentType) StatusStyle {
	if style, ok := documentTypeStyles[t]; ok {
		return style
	}
	return StatusStyle{Label: Capitalize(string(t)), Color: neutralColor, Icon: "FileText"}
}

// DocumentTypeCounts counts documents per type
func DocumentTypeCounts(docs []entities.Document) map[entities.DocumentType]int {
	return CountBy(docs, func(d entities.Document) entities.DocumentType { return d.Type })
}
