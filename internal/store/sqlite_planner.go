package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tailora-app/tailora/internal/protocol"
)

func (s *Store) CreateEvent(req protocol.CreateEventRequest) (protocol.Event, error) {
	occasion := strings.ToLower(strings.TrimSpace(req.OccasionType))
	if occasion == "" {
		occasion = "casual"
	}

	id := uuid.NewString()
	now := nowUTC()
	_, err := s.db.Exec(`INSERT INTO events (
		id, title, event_date, time_of_day, occasion_type, location, notes, outfit_id,
		created_utc, updated_utc
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, strings.TrimSpace(req.Title), strings.TrimSpace(req.Date),
		nullableString(strings.TrimSpace(req.Time)), occasion,
		req.Location, req.Notes, nullableString(strings.TrimSpace(req.OutfitID)),
		now, now,
	)
	if err != nil {
		return protocol.Event{}, fmt.Errorf("create event: %w", err)
	}
	return s.GetEvent(id)
}

func (s *Store) GetEvent(id string) (protocol.Event, error) {
	row := s.db.QueryRow(eventSelect+` WHERE e.id = ?`, id)
	event, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return protocol.Event{}, ErrNotFound
	}
	if err != nil {
		return protocol.Event{}, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// ListEvents returns events within [from, to] inclusive; empty bounds are
// open-ended. Dates are YYYY-MM-DD so string comparison orders correctly.
func (s *Store) ListEvents(from, to string) ([]protocol.Event, error) {
	query := eventSelect
	var (
		conds []string
		args  []any
	)
	if strings.TrimSpace(from) != "" {
		conds = append(conds, "e.event_date >= ?")
		args = append(args, strings.TrimSpace(from))
	}
	if strings.TrimSpace(to) != "" {
		conds = append(conds, "e.event_date <= ?")
		args = append(args, strings.TrimSpace(to))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.event_date, e.time_of_day"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []protocol.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

func (s *Store) UpdateEvent(id string, req protocol.UpdateEventRequest) (protocol.Event, error) {
	sets := []string{"updated_utc = ?"}
	args := []any{nowUTC()}
	appendSet := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if req.Title != nil {
		appendSet("title", strings.TrimSpace(*req.Title))
	}
	if req.Date != nil {
		appendSet("event_date", strings.TrimSpace(*req.Date))
	}
	if req.Time != nil {
		appendSet("time_of_day", nullableString(strings.TrimSpace(*req.Time)))
	}
	if req.OccasionType != nil {
		appendSet("occasion_type", strings.ToLower(strings.TrimSpace(*req.OccasionType)))
	}
	if req.Location != nil {
		appendSet("location", *req.Location)
	}
	if req.Notes != nil {
		appendSet("notes", *req.Notes)
	}
	if req.OutfitID != nil {
		appendSet("outfit_id", nullableString(strings.TrimSpace(*req.OutfitID)))
	}
	if req.IsCompleted != nil {
		appendSet("is_completed", boolToInt(*req.IsCompleted))
	}

	args = append(args, id)
	res, err := s.db.Exec(`UPDATE events SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return protocol.Event{}, fmt.Errorf("update event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return protocol.Event{}, ErrNotFound
	}
	return s.GetEvent(id)
}

func (s *Store) DeleteEvent(id string) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleEventComplete flips completion and returns the new state.
func (s *Store) ToggleEventComplete(id string) (bool, error) {
	res, err := s.db.Exec(
		`UPDATE events SET is_completed = 1 - is_completed, updated_utc = ? WHERE id = ?`,
		nowUTC(), id,
	)
	if err != nil {
		return false, fmt.Errorf("toggle event complete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, ErrNotFound
	}

	var completed int
	if err := s.db.QueryRow(`SELECT is_completed FROM events WHERE id = ?`, id).Scan(&completed); err != nil {
		return false, fmt.Errorf("read event completion: %w", err)
	}
	return completed != 0, nil
}

func (s *Store) CreatePlanning(req protocol.CreatePlanningRequest) (protocol.OutfitPlanning, error) {
	outfitID := strings.TrimSpace(req.OutfitID)
	var exists int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM outfits WHERE id = ?`, outfitID).Scan(&exists); err != nil {
		return protocol.OutfitPlanning{}, fmt.Errorf("check planning outfit: %w", err)
	}
	if exists == 0 {
		return protocol.OutfitPlanning{}, fmt.Errorf("planning references unknown outfit %q: %w", outfitID, ErrNotFound)
	}

	id := uuid.NewString()
	now := nowUTC()
	_, err := s.db.Exec(`INSERT INTO outfit_plannings (
		id, outfit_id, plan_date, event_name, event_description, location, notes,
		created_utc, updated_utc
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, outfitID, strings.TrimSpace(req.Date),
		req.EventName, req.EventDescription, req.Location, req.Notes,
		now, now,
	)
	if err != nil {
		return protocol.OutfitPlanning{}, fmt.Errorf("create planning: %w", err)
	}
	return s.getPlanning(id)
}

func (s *Store) getPlanning(id string) (protocol.OutfitPlanning, error) {
	row := s.db.QueryRow(planningSelect+` WHERE p.id = ?`, id)
	planning, err := scanPlanning(row)
	if errors.Is(err, sql.ErrNoRows) {
		return protocol.OutfitPlanning{}, ErrNotFound
	}
	if err != nil {
		return protocol.OutfitPlanning{}, fmt.Errorf("get planning: %w", err)
	}
	return planning, nil
}

func (s *Store) ListPlannings(from, to string) ([]protocol.OutfitPlanning, error) {
	query := planningSelect
	var (
		conds []string
		args  []any
	)
	if strings.TrimSpace(from) != "" {
		conds = append(conds, "p.plan_date >= ?")
		args = append(args, strings.TrimSpace(from))
	}
	if strings.TrimSpace(to) != "" {
		conds = append(conds, "p.plan_date <= ?")
		args = append(args, strings.TrimSpace(to))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.plan_date"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plannings: %w", err)
	}
	defer rows.Close()

	var out []protocol.OutfitPlanning
	for rows.Next() {
		planning, err := scanPlanning(rows)
		if err != nil {
			return nil, fmt.Errorf("scan planning: %w", err)
		}
		out = append(out, planning)
	}
	return out, rows.Err()
}

func (s *Store) DeletePlanning(id string) error {
	res, err := s.db.Exec(`DELETE FROM outfit_plannings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete planning: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const eventSelect = `SELECT e.id, e.title, e.event_date, e.time_of_day, e.occasion_type,
	e.location, e.notes, e.outfit_id, o.name, e.is_completed, e.created_utc, e.updated_utc
	FROM events e
	LEFT JOIN outfits o ON o.id = e.outfit_id`

const planningSelect = `SELECT p.id, p.outfit_id, o.name, p.plan_date, p.event_name,
	p.event_description, p.location, p.notes, p.created_utc, p.updated_utc
	FROM outfit_plannings p
	JOIN outfits o ON o.id = p.outfit_id`

func scanEvent(scanner interface{ Scan(dest ...any) error }) (protocol.Event, error) {
	var (
		event                  protocol.Event
		timeOfDay              sql.NullString
		location, notes        sql.NullString
		outfitID, outfitName   sql.NullString
		completed              int
		createdUTC, updatedUTC string
	)
	if err := scanner.Scan(
		&event.ID, &event.Title, &event.Date, &timeOfDay, &event.OccasionType,
		&location, &notes, &outfitID, &outfitName, &completed, &createdUTC, &updatedUTC,
	); err != nil {
		return protocol.Event{}, err
	}
	event.Time = stringValue(timeOfDay)
	event.Location = stringValue(location)
	event.Notes = stringValue(notes)
	event.OutfitID = stringValue(outfitID)
	event.OutfitName = stringValue(outfitName)
	event.IsCompleted = completed != 0
	event.CreatedUTC = parseUTC(createdUTC)
	event.UpdatedUTC = parseUTC(updatedUTC)
	return event, nil
}

func scanPlanning(scanner interface{ Scan(dest ...any) error }) (protocol.OutfitPlanning, error) {
	var (
		planning               protocol.OutfitPlanning
		eventName, eventDesc   sql.NullString
		location, notes        sql.NullString
		createdUTC, updatedUTC string
	)
	if err := scanner.Scan(
		&planning.ID, &planning.OutfitID, &planning.OutfitName, &planning.Date,
		&eventName, &eventDesc, &location, &notes, &createdUTC, &updatedUTC,
	); err != nil {
		return protocol.OutfitPlanning{}, err
	}
	planning.EventName = stringValue(eventName)
	planning.EventDescription = stringValue(eventDesc)
	planning.Location = stringValue(location)
	planning.Notes = stringValue(notes)
	planning.CreatedUTC = parseUTC(createdUTC)
	planning.UpdatedUTC = parseUTC(updatedUTC)
	return planning, nil
}
