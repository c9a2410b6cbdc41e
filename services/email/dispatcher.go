package email

// Notification is the pair of messages produced by one inquiry submission.
type Notification struct {
	SubmitterSubject string
	SubmitterHTML    string
	StaffSubject     string
	StaffHTML        string
}

// Dispatcher routes inquiry notifications through the configured Sender.
type Dispatcher struct {
	Sender Sender
	Cfg    Config
}

// NewDispatcher resolves the provider once at startup.
func NewDispatcher(cfg Config) (*Dispatcher, error) {
	sender, err := NewSender(cfg)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{Sender: sender, Cfg: cfg}, nil
}

// NotifyInquiry attempts the submitter confirmation and the staff
// notification, appending the configured extra recipients to both. The staff
// recipient is an explicit argument so no global setting is ever mutated for a
// single call. Both sends are attempted even when the first fails; the first
// failure is returned.
func (d *Dispatcher) NotifyInquiry(n Notification, submitterEmail, staffEmail string) error {
	submitterList := append([]string{submitterEmail}, d.Cfg.ExtraRecipients...)
	staffList := append([]string{staffEmail}, d.Cfg.ExtraRecipients...)

	firstErr := d.Sender.Send(n.SubmitterSubject, n.SubmitterHTML, submitterList)
	if err := d.Sender.Send(n.StaffSubject, n.StaffHTML, staffList); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
