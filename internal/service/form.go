// Package service contains the form state for the bus ticket generator.
// A FormController owns one in-progress TicketRecord and the "ticket is
// visible" flag; a SessionStore keeps one controller per browser session.
// Nothing here touches HTTP and nothing is persisted.
package service

import (
	"fmt"
	"sync"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
	"github.com/pkordes/bus-ticket/backend/internal/render"
)

// State is a snapshot of a FormController. Record is a copy, so holders of
// a State never observe later edits.
type State struct {
	Record  domain.TicketRecord `json:"record"`
	Visible bool                `json:"visible"`
	Title   string              `json:"title"`
}

// Observer is notified with the new State after every mutation, before the
// mutating call returns. Observers must not call back into the controller.
type Observer func(State)

// FormController holds the record being edited and whether it is on display.
type FormController struct {
	mu        sync.Mutex
	record    domain.TicketRecord
	visible   bool
	observers []Observer
}

// NewFormController returns a controller holding the empty record, hidden.
func NewFormController() *FormController {
	return &FormController{record: domain.EmptyRecord()}
}

// Observe registers o and immediately calls it with the current state, so a
// binding (e.g. the page title) is correct from the start.
func (c *FormController) Observe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
	o(c.stateLocked())
}

// State returns a snapshot of the controller.
func (c *FormController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// UpdateField sets one attribute of the record. Any value is accepted;
// an unknown field returns domain.ErrValidation and changes nothing.
func (c *FormController) UpdateField(field domain.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.record.Set(field, value); err != nil {
		return fmt.Errorf("service.FormController.UpdateField: %w", err)
	}
	c.notifyLocked()
	return nil
}

// LoadSample replaces the record with the demo record and hides the ticket.
// Display is only ever triggered by Submit.
func (c *FormController) LoadSample() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record = domain.SampleRecord()
	c.visible = false
	c.notifyLocked()
}

// Submit puts the current record on display.
func (c *FormController) Submit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = true
	c.notifyLocked()
}

// Reset clears the record to its defaults and hides the ticket.
func (c *FormController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record = domain.EmptyRecord()
	c.visible = false
	c.notifyLocked()
}

func (c *FormController) stateLocked() State {
	return State{
		Record:  c.record,
		Visible: c.visible,
		Title:   render.TitleFor(c.record, c.visible),
	}
}

func (c *FormController) notifyLocked() {
	s := c.stateLocked()
	for _, o := range c.observers {
		o(s)
	}
}
