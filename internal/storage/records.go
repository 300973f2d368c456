package storage

import (
	"fmt"

	"noknock/internal/model/caring"
	"noknock/internal/model/person"
	"noknock/internal/model/value"
)

// formatVersion is written to every data file.
const formatVersion = 1

type document struct {
	Version  int             `json:"version" yaml:"version"`
	Patients []patientRecord `json:"patients" yaml:"patients"`
}

type patientRecord struct {
	Name      string            `json:"name" yaml:"name"`
	Ward      string            `json:"ward" yaml:"ward"`
	IC        string            `json:"ic" yaml:"ic"`
	Tags      []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	NextOfKin []nextOfKinRecord `json:"nextOfKin,omitempty" yaml:"nextOfKin,omitempty"`
	Sessions  []sessionRecord   `json:"sessions,omitempty" yaml:"sessions,omitempty"`
}

type nextOfKinRecord struct {
	Name         string `json:"name" yaml:"name"`
	Phone        string `json:"phone" yaml:"phone"`
	Relationship string `json:"relationship" yaml:"relationship"`
}

type sessionRecord struct {
	Date     string `json:"date" yaml:"date"`
	Time     string `json:"time" yaml:"time"`
	CareType string `json:"careType" yaml:"careType"`
	Status   string `json:"status" yaml:"status"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func fromPatients(patients []person.Patient) document {
	doc := document{Version: formatVersion, Patients: make([]patientRecord, 0, len(patients))}
	for _, p := range patients {
		rec := patientRecord{Name: p.Name().String(), Ward: p.Ward().String(), IC: p.IC().String()}
		for _, t := range p.Tags() {
			rec.Tags = append(rec.Tags, t.String())
		}
		for _, n := range p.NextOfKin() {
			rec.NextOfKin = append(rec.NextOfKin, nextOfKinRecord{
				Name:         n.Name().String(),
				Phone:        n.Phone().String(),
				Relationship: n.Relationship().String(),
			})
		}
		for _, s := range p.CaringSessions() {
			rec.Sessions = append(rec.Sessions, sessionRecord{
				Date:     s.Date().String(),
				Time:     s.Time().String(),
				CareType: s.CareType().String(),
				Status:   s.Status().String(),
				Notes:    s.Note().String(),
			})
		}
		doc.Patients = append(doc.Patients, rec)
	}
	return doc
}

func (d document) toPatients() ([]person.Patient, error) {
	patients := make([]person.Patient, 0, len(d.Patients))
	for i, rec := range d.Patients {
		p, err := rec.toPatient()
		if err != nil {
			return nil, fmt.Errorf("%w: patient %d: %w", ErrInvalidData, i+1, err)
		}
		patients = append(patients, p)
	}
	return patients, nil
}

func (r patientRecord) toPatient() (person.Patient, error) {
	name, err := value.NewName(r.Name)
	if err != nil {
		return person.Patient{}, err
	}
	ward, err := value.NewWard(r.Ward)
	if err != nil {
		return person.Patient{}, err
	}
	ic, err := value.NewIC(r.IC)
	if err != nil {
		return person.Patient{}, err
	}
	tags := make([]value.Tag, 0, len(r.Tags))
	for _, raw := range r.Tags {
		t, err := value.NewTag(raw)
		if err != nil {
			return person.Patient{}, err
		}
		tags = append(tags, t)
	}

	p := person.NewPatient(name, ward, ic, tags)
	for j, nr := range r.NextOfKin {
		nok, err := nr.toNextOfKin(p)
		if err != nil {
			return person.Patient{}, fmt.Errorf("next-of-kin %d: %w", j+1, err)
		}
		if p, err = p.WithNextOfKin(nok); err != nil {
			return person.Patient{}, fmt.Errorf("next-of-kin %d: %w", j+1, err)
		}
	}
	for j, sr := range r.Sessions {
		s, err := sr.toSession()
		if err != nil {
			return person.Patient{}, fmt.Errorf("session %d: %w", j+1, err)
		}
		if p, err = p.WithCaringSession(s); err != nil {
			return person.Patient{}, fmt.Errorf("session %d: %w", j+1, err)
		}
	}
	return p, nil
}

func (r nextOfKinRecord) toNextOfKin(owner person.Patient) (person.NextOfKin, error) {
	name, err := value.NewName(r.Name)
	if err != nil {
		return person.NextOfKin{}, err
	}
	phone, err := value.NewPhone(r.Phone)
	if err != nil {
		return person.NextOfKin{}, err
	}
	rel, err := value.RelationshipOf(r.Relationship)
	if err != nil {
		return person.NextOfKin{}, err
	}
	return person.NewNextOfKin(name, owner.Ref(), phone, rel), nil
}

// toSession restores a stored session. The date keeps its historical value,
// so past days are accepted here.
func (r sessionRecord) toSession() (caring.Session, error) {
	date, err := value.RestoreDate(r.Date)
	if err != nil {
		return caring.Session{}, err
	}
	at, err := value.NewTime(r.Time)
	if err != nil {
		return caring.Session{}, err
	}
	careType, err := value.CareTypeOf(r.CareType)
	if err != nil {
		return caring.Session{}, err
	}
	note, err := value.NewNote(r.Notes)
	if err != nil {
		return caring.Session{}, err
	}
	s := caring.New(date, at, careType, note)
	if r.Status != "" {
		status, err := value.SessionStatusOf(r.Status)
		if err != nil {
			return caring.Session{}, err
		}
		s = s.WithStatus(status)
	}
	return s, nil
}
