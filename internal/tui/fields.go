package tui

import (
	"github.com/MKhiriev/qryptshare/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type fieldID int

const (
	fieldURL fieldID = iota
	fieldSSID
	fieldPassword
	fieldEncryption
	fieldHidden
	fieldFirstName
	fieldLastName
	fieldMobile
	fieldEmail
	fieldJobTitle
	fieldOrganization
	fieldWebsite

	fieldCount
)

// modeFields lists the inputs of every mode in focus order.
var modeFields = map[models.Mode][]fieldID{
	models.ModeLink:               {fieldURL},
	models.ModeWirelessCredential: {fieldSSID, fieldEncryption, fieldPassword, fieldHidden},
	models.ModeContactCard: {
		fieldFirstName, fieldLastName, fieldMobile, fieldEmail,
		fieldJobTitle, fieldOrganization, fieldWebsite,
	},
}

var fieldLabels = [fieldCount]string{
	fieldURL:          "URL",
	fieldSSID:         "Network",
	fieldPassword:     "Password",
	fieldEncryption:   "Security",
	fieldHidden:       "Hidden",
	fieldFirstName:    "First name",
	fieldLastName:     "Last name",
	fieldMobile:       "Mobile",
	fieldEmail:        "Email",
	fieldJobTitle:     "Job title",
	fieldOrganization: "Organization",
	fieldWebsite:      "Website",
}

var fieldPlaceholders = [fieldCount]string{
	fieldURL:       "https://example.com",
	fieldSSID:      "GuestNet",
	fieldFirstName: "Ana",
	fieldLastName:  "Cruz",
	fieldMobile:    "+1 555 0100",
	fieldEmail:     "ana@example.com",
	fieldWebsite:   "https://example.com",
}

// isSelector reports whether f is driven by left/right/space instead of text.
func (f fieldID) isSelector() bool {
	return f == fieldEncryption || f == fieldHidden
}

func newFieldInputs() [fieldCount]textinput.Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		if fieldID(i).isSelector() {
			continue
		}
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].Width = 36
		inputs[i].Placeholder = fieldPlaceholders[i]
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	return inputs
}

// applyInputs copies every text input into form. Inputs of inactive modes are
// copied too so that switching modes never loses what was typed.
func applyInputs(form models.FormState, inputs [fieldCount]textinput.Model) models.FormState {
	form.Link.URL = inputs[fieldURL].Value()

	form.WiFi.SSID = inputs[fieldSSID].Value()
	form.WiFi.Password = inputs[fieldPassword].Value()

	form.Contact = models.ContactCard{
		FirstName:    inputs[fieldFirstName].Value(),
		LastName:     inputs[fieldLastName].Value(),
		Mobile:       inputs[fieldMobile].Value(),
		Email:        inputs[fieldEmail].Value(),
		JobTitle:     inputs[fieldJobTitle].Value(),
		Organization: inputs[fieldOrganization].Value(),
		Website:      inputs[fieldWebsite].Value(),
	}

	return form
}

func nextEncryption(current models.Encryption, step int) models.Encryption {
	n := len(models.Encryptions)
	idx := 0
	for i, e := range models.Encryptions {
		if e == current {
			idx = i
			break
		}
	}
	return models.Encryptions[((idx+step)%n+n)%n]
}
