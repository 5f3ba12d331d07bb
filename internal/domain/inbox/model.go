package inbox

// Inquiry is a message left for the front desk. Inquiries come from the
// seed data and are never persisted.
type Inquiry struct {
	Subject string `yaml:"subject"`
	Date    string `yaml:"date"`
	Remarks string `yaml:"remarks"`
}

// InquiryList holds inquiries in the order they were received.
type InquiryList struct {
	inquiries []*Inquiry
}

func NewInquiryList() *InquiryList {
	return &InquiryList{inquiries: []*Inquiry{}}
}

func (l *InquiryList) Add(i *Inquiry) {
	l.inquiries = append(l.inquiries, i)
}

func (l *InquiryList) All() []*Inquiry { return l.inquiries }

func (l *InquiryList) Len() int { return len(l.inquiries) }
