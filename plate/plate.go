// Package plate holds the shopping-cart state container. State is mutated
// through a closed set of actions; each mutation is followed by an explicit
// save of the touched keys to a key/value Store so the plate survives a new
// session.
package plate

import (
	"context"
	"encoding/json"
	"fmt"
)

// Storage keys. Each holds one JSON-serialized value.
const (
	KeyItems           = "plateItems"
	KeyDeliveryAddress = "deliveryAddress"
	KeyPaymentMethod   = "paymentMethod"
	KeyUserInfo        = "userInfo"
	KeyDarkMode        = "darkMode"
)

// Item is a dish selection with display fields denormalized at selection time.
type Item struct {
	DishID       string  `json:"_id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
	Quantity     int     `json:"quantity"`
}

// Address is the delivery destination entered in the checkout wizard.
type Address struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	PinCode  string `json:"pinCode"`
	Country  string `json:"country"`
}

// UserInfo is the session identity kept alongside the plate.
type UserInfo struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// State is the full container contents.
type State struct {
	Items           []Item    `json:"plateItems"`
	DeliveryAddress *Address  `json:"deliveryAddress,omitempty"`
	PaymentMethod   string    `json:"paymentMethod"`
	User            *UserInfo `json:"userInfo,omitempty"`
	DarkMode        bool      `json:"darkMode"`
}

// Manager binds a State to a Store. All mutation goes through the action
// methods below; nothing else persists.
type Manager struct {
	store Store
	state State
}

// NewManager creates an empty manager over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store, state: State{Items: []Item{}}}
}

// Load restores the state from the store. Missing keys leave zero values.
func (m *Manager) Load(ctx context.Context) error {
	if err := m.loadJSON(ctx, KeyItems, &m.state.Items); err != nil {
		return err
	}
	if m.state.Items == nil {
		m.state.Items = []Item{}
	}
	if err := m.loadJSON(ctx, KeyDeliveryAddress, &m.state.DeliveryAddress); err != nil {
		return err
	}
	if err := m.loadJSON(ctx, KeyUserInfo, &m.state.User); err != nil {
		return err
	}

	method, err := m.store.Get(ctx, KeyPaymentMethod)
	if err != nil {
		return err
	}
	m.state.PaymentMethod = method

	dark, err := m.store.Get(ctx, KeyDarkMode)
	if err != nil {
		return err
	}
	m.state.DarkMode = dark == "ON"

	return nil
}

// State returns a copy of the current contents.
func (m *Manager) State() State {
	out := m.state
	out.Items = append([]Item{}, m.state.Items...)
	return out
}

// AddItem upserts by dish identity, replacing the quantity of an existing
// line rather than summing duplicates.
func (m *Manager) AddItem(ctx context.Context, item Item) error {
	if item.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	replaced := false
	for i := range m.state.Items {
		if m.state.Items[i].DishID == item.DishID {
			m.state.Items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		m.state.Items = append(m.state.Items, item)
	}

	return m.saveJSON(ctx, KeyItems, m.state.Items)
}

// RemoveItem filters by dish identity. Removing an absent item is a no-op.
func (m *Manager) RemoveItem(ctx context.Context, dishID string) error {
	items := m.state.Items[:0]
	for _, item := range m.state.Items {
		if item.DishID != dishID {
			items = append(items, item)
		}
	}
	m.state.Items = items

	return m.saveJSON(ctx, KeyItems, m.state.Items)
}

// SetDeliveryAddress stores the checkout destination.
func (m *Manager) SetDeliveryAddress(ctx context.Context, address Address) error {
	m.state.DeliveryAddress = &address
	return m.saveJSON(ctx, KeyDeliveryAddress, address)
}

// SetPaymentMethod stores the chosen payment method.
func (m *Manager) SetPaymentMethod(ctx context.Context, method string) error {
	m.state.PaymentMethod = method
	return m.store.Set(ctx, KeyPaymentMethod, method)
}

// Clear empties the plate items, leaving address, payment method and user
// untouched. Called after a successful checkout.
func (m *Manager) Clear(ctx context.Context) error {
	m.state.Items = []Item{}
	return m.store.Delete(ctx, KeyItems)
}

// SetUser stores the session identity.
func (m *Manager) SetUser(ctx context.Context, user UserInfo) error {
	m.state.User = &user
	return m.saveJSON(ctx, KeyUserInfo, user)
}

// Logout clears the user identity and resets the whole plate.
func (m *Manager) Logout(ctx context.Context) error {
	m.state.User = nil
	m.state.Items = []Item{}
	m.state.DeliveryAddress = nil
	m.state.PaymentMethod = ""

	for _, key := range []string{KeyUserInfo, KeyItems, KeyDeliveryAddress, KeyPaymentMethod} {
		if err := m.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// SetDarkMode persists the display preference as "ON"/"OFF".
func (m *Manager) SetDarkMode(ctx context.Context, on bool) error {
	m.state.DarkMode = on
	value := "OFF"
	if on {
		value = "ON"
	}
	return m.store.Set(ctx, KeyDarkMode, value)
}

func (m *Manager) saveJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, key, string(data))
}

func (m *Manager) loadJSON(ctx context.Context, key string, out interface{}) error {
	data, err := m.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if data == "" {
		return nil
	}
	return json.Unmarshal([]byte(data), out)
}
