package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// command is one entry of the command table. args is the exact number of
// positional arguments the command takes.
type command struct {
	usage string
	args  int
	run   func(s *Shell, args []string) (string, error)
}

func commandTable() map[string]command {
	return map[string]command{
		"hello":         {usage: "hello", args: 0, run: (*Shell).hello},
		"add":           {usage: "add <name> <phone>", args: 2, run: (*Shell).addContact},
		"change":        {usage: "change <name> <old_phone> <new_phone>", args: 3, run: (*Shell).changePhone},
		"phone":         {usage: "phone <name>", args: 1, run: (*Shell).showPhones},
		"remove-phone":  {usage: "remove-phone <name> <phone>", args: 2, run: (*Shell).removePhone},
		"delete":        {usage: "delete <name>", args: 1, run: (*Shell).deleteContact},
		"add-birthday":  {usage: "add-birthday <name> <DD.MM.YYYY>", args: 2, run: (*Shell).addBirthday},
		"show-birthday": {usage: "show-birthday <name>", args: 1, run: (*Shell).showBirthday},
		"birthdays":     {usage: "birthdays", args: 0, run: (*Shell).birthdays},
		"all":           {usage: "all", args: 0, run: (*Shell).showAll},
		"help":          {usage: "help", args: 0, run: (*Shell).help},
	}
}

func (s *Shell) hello(_ []string) (string, error) {
	return msgHello, nil
}

// addContact creates the contact if needed and adds the phone. The phone
// is validated before anything is stored, so a bad number never leaves
// an empty contact behind.
func (s *Shell) addContact(args []string) (string, error) {
	name, phone := args[0], args[1]

	msg := msgContactUpdated
	rec, err := s.book.Find(name)
	if errors.Is(err, types.ErrNotFound) {
		rec, err = types.NewRecord(name)
		msg = msgContactAdded
	}
	if err != nil {
		return "", err
	}

	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	if err := s.book.AddRecord(rec); err != nil {
		return "", fmt.Errorf("save contact: %w", err)
	}
	return msg, nil
}

func (s *Shell) changePhone(args []string) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, msg, err := s.find(name)
	if rec == nil {
		return msg, err
	}
	found, err := rec.EditPhone(oldPhone, newPhone)
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf(msgPhoneNotFound, oldPhone), nil
	}
	if err := s.book.AddRecord(rec); err != nil {
		return "", fmt.Errorf("save contact: %w", err)
	}
	return fmt.Sprintf(msgPhoneChanged, oldPhone, newPhone), nil
}

func (s *Shell) showPhones(args []string) (string, error) {
	name := args[0]

	rec, msg, err := s.find(name)
	if rec == nil {
		return msg, err
	}
	if len(rec.Phones()) == 0 {
		return fmt.Sprintf(msgNoPhones, name), nil
	}
	return fmt.Sprintf(msgPhones, name, rec.ListPhones()), nil
}

func (s *Shell) removePhone(args []string) (string, error) {
	name, phone := args[0], args[1]

	rec, msg, err := s.find(name)
	if rec == nil {
		return msg, err
	}
	if !rec.RemovePhone(phone) {
		return fmt.Sprintf(msgPhoneNotFound, phone), nil
	}
	if err := s.book.AddRecord(rec); err != nil {
		return "", fmt.Errorf("save contact: %w", err)
	}
	return fmt.Sprintf(msgPhoneRemoved, phone), nil
}

func (s *Shell) deleteContact(args []string) (string, error) {
	name := args[0]

	rec, msg, err := s.find(name)
	if rec == nil {
		return msg, err
	}
	if err := s.book.Delete(name); err != nil {
		return "", fmt.Errorf("delete contact: %w", err)
	}
	return fmt.Sprintf(msgContactDeleted, name), nil
}

func (s *Shell) addBirthday(args []string) (string, error) {
	name, birthday := args[0], args[1]

	rec, msg, err := s.find(name)
	if rec == nil {
		return msg, err
	}
	if err := rec.SetBirthday(birthday); err != nil {
		return "", err
	}
	if err := s.book.AddRecord(rec); err != nil {
		return "", fmt.Errorf("save contact: %w", err)
	}
	return fmt.Sprintf(msgBirthdaySet, name, birthday), nil
}

func (s *Shell) showBirthday(args []string) (string, error) {
	name := args[0]

	rec, msg, err := s.find(name)
	if rec == nil {
		return msg, err
	}
	return fmt.Sprintf(msgBirthdayShow, name, rec.BirthdayDisplay()), nil
}

func (s *Shell) birthdays(_ []string) (string, error) {
	records, err := s.book.Records()
	if err != nil {
		return "", fmt.Errorf("list contacts: %w", err)
	}
	upcoming := types.UpcomingBirthdays(records, s.now())
	if len(upcoming) == 0 {
		return msgNoUpcoming, nil
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf(msgUpcomingLineFmt, u.Name, u.DateString())
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Shell) showAll(_ []string) (string, error) {
	records, err := s.book.Records()
	if err != nil {
		return "", fmt.Errorf("list contacts: %w", err)
	}
	s.display.DisplayContacts(records)
	return "", nil
}

func (s *Shell) help(_ []string) (string, error) {
	s.display.DisplayCommands()
	return "", nil
}

// find looks up name. When the record is nil, the returned message and
// error are what the command should return: a not-found message, or a
// storage error.
func (s *Shell) find(name string) (*types.Record, string, error) {
	rec, err := s.book.Find(name)
	if errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Sprintf(msgContactNotFound, name), nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("find contact: %w", err)
	}
	return rec, "", nil
}
