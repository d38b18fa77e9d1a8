package server

const plannerHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>tailora planner</title>
  <style>
` + uiPageChromeCSS + `
    h1 { margin: 0 0 4px; font-size: 24px; }
    h2 { margin: 0 0 12px; font-size: 18px; }
    p { margin: 0 0 10px; color: var(--muted); }
    .event-row {
      display: flex;
      justify-content: space-between;
      align-items: center;
      gap: 10px;
      padding: 10px 0;
      border-bottom: 1px solid var(--line);
      flex-wrap: wrap;
    }
    .event-row:last-child { border-bottom: none; }
    .event-row.completed .event-title { text-decoration: line-through; color: var(--muted); }
    .event-title { font-weight: 600; }
    .event-meta { font-size: 12px; color: var(--muted); }
    .event-actions { display: flex; gap: 6px; flex-wrap: wrap; }
    .event-actions button { font-size: 12px; padding: 6px 8px; }
  </style>
</head>
<body>
  <main>
    <div class="card">
      <div class="header">
        <div>
          <h1>Planner</h1>
          <p>Upcoming events and the outfits pinned to them</p>
        </div>
        <div class="header-actions">
          <a class="nav-btn ripple" href="/">Home <span class="nav-emoji" aria-hidden="true">🏠</span></a>
          <a class="nav-btn ripple" href="/outfits">Outfits <span class="nav-emoji" aria-hidden="true">🧥</span></a>
        </div>
      </div>
    </div>
    <div class="card animate-on-scroll">
      <h2>Events</h2>
      <div id="events" class="skeleton" style="min-height:120px;"></div>
    </div>
    <div class="card animate-on-scroll" data-delay="100">
      <h2>Planned outfits</h2>
      <div id="plannings" class="skeleton" style="min-height:80px;"></div>
    </div>
  </main>
  <script src="/ui/shared.js"></script>
  <script src="/ui/confirm.js"></script>
  <script src="/ui/animations.js"></script>
  <script>
    function eventRow(event) {
      const meta = [formatCalendarDate(event.date), event.time, event.occasion_type, event.location, event.outfit_name]
        .filter(Boolean).join(' · ');
      const rowClass = event.is_completed ? 'event-row completed' : 'event-row';
      return '<div class="' + rowClass + '">' +
        '<div><div class="event-title">' + escapeHtml(event.title) + '</div>' +
        '<div class="event-meta">' + escapeHtml(meta) + '</div></div>' +
        '<div class="event-actions">' +
        '<button type="button" class="ripple complete-btn" data-event-id="' + escapeHtml(event.id) + '">' +
        (event.is_completed ? 'Reopen' : 'Done') + '</button>' +
        deleteForm('delete-event-' + event.id, '/forms/events/' + encodeURIComponent(event.id) + '/delete', '/planner') +
        '<button type="button" class="danger confirm-delete" data-form-id="delete-event-' + escapeHtml(event.id) + '" data-item-name="' + escapeHtml(event.title) + '">Delete</button>' +
        '</div>' +
        '</div>';
    }

    function renderEvents(events) {
      if (!events || !events.length) {
        replaceSkeleton('events', '<p class="muted">No events planned.</p>');
        return;
      }
      replaceSkeleton('events', events.map(eventRow).join(''));
    }

    function renderPlannings(plannings) {
      if (!plannings || !plannings.length) {
        replaceSkeleton('plannings', '<p class="muted">No outfits pinned to a date yet.</p>');
        return;
      }
      const html = plannings.map((planning) =>
        '<div class="event-row"><div>' +
        '<div class="event-title">' + escapeHtml(planning.outfit_name || 'Outfit') + '</div>' +
        '<div class="event-meta">' + escapeHtml([formatCalendarDate(planning.date), planning.event_name, planning.location].filter(Boolean).join(' · ')) + '</div>' +
        '</div></div>'
      ).join('');
      replaceSkeleton('plannings', html);
    }

    function loadPlanner() {
      apiJSON('/api/v1/events')
        .then((body) => renderEvents(body.events || []))
        .catch((err) => showToast('Failed to load events: ' + err.message, 'error'));
      apiJSON('/api/v1/plannings')
        .then((body) => renderPlannings(body.plannings || []))
        .catch((err) => showToast('Failed to load plannings: ' + err.message, 'error'));
    }

    document.addEventListener('click', (ev) => {
      const completeBtn = ev.target && ev.target.closest && ev.target.closest('.complete-btn');
      if (!completeBtn) return;
      apiJSON('/api/v1/events/' + encodeURIComponent(completeBtn.dataset.eventId) + '/complete', { method: 'POST' })
        .then(loadPlanner)
        .catch((err) => showToast(err.message, 'error'));
    });

    document.addEventListener('DOMContentLoaded', loadPlanner);
  </script>
</body>
</html>
`
