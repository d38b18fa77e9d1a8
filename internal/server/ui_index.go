package server

const indexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>tailora</title>
  <style>
` + uiPageChromeCSS + `
    h1 { margin: 0 0 4px; font-size: 28px; }
    h2 { margin: 0 0 12px; font-size: 18px; }
    p { margin: 0 0 10px; color: var(--muted); }
    .stat-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 12px; }
    .stat { border: 1px solid var(--line); border-radius: 12px; padding: 14px; text-align: center; background: #fffdf9; }
    .stat-value { font-size: 30px; font-weight: 700; color: var(--accent); }
    .stat-label { font-size: 13px; color: var(--muted); margin-top: 4px; }
    .most-worn { display: flex; justify-content: space-between; gap: 8px; padding: 7px 0; border-bottom: 1px solid var(--line); }
    .most-worn:last-child { border-bottom: none; }
    @media (max-width: 760px) { .stat-grid { grid-template-columns: repeat(2, 1fr); } }
  </style>
</head>
<body>
  <main>
    <div class="card animate-on-scroll">
      <div class="header">
        <div class="brand">
          <div>
            <h1>tailora</h1>
            <p>Your wardrobe, outfits and laundry in one place</p>
          </div>
        </div>
        <div class="header-actions">
          <a class="nav-btn ripple" href="/wardrobe">Wardrobe <span class="nav-emoji" aria-hidden="true">👕</span></a>
          <a class="nav-btn ripple" href="/outfits">Outfits <span class="nav-emoji" aria-hidden="true">🧥</span></a>
          <a class="nav-btn ripple" href="/planner">Planner <span class="nav-emoji" aria-hidden="true">📅</span></a>
          <a class="nav-btn ripple" href="/laundry">Laundry <span class="nav-emoji" aria-hidden="true">🧺</span></a>
        </div>
      </div>
    </div>
    <div class="card animate-on-scroll">
      <h2>At a glance</h2>
      <div id="stats" class="skeleton" style="min-height:110px;"></div>
    </div>
    <div class="card animate-on-scroll" data-delay="100">
      <h2>Most worn</h2>
      <div id="mostWorn" class="skeleton" style="min-height:80px;"></div>
    </div>
    <div class="card animate-on-scroll" data-delay="200">
      <h2>Recent additions</h2>
      <div id="recent" class="skeleton" style="min-height:80px;"></div>
    </div>
  </main>
  <script src="/ui/shared.js"></script>
  <script src="/ui/confirm.js"></script>
  <script src="/ui/animations.js"></script>
  <script>
    function statCell(value, label) {
      return '<div class="stat">' +
        '<div class="stat-value" data-count="' + Number(value || 0) + '">0</div>' +
        '<div class="stat-label">' + escapeHtml(label) + '</div>' +
        '</div>';
    }

    function renderStats(stats) {
      const cells = [
        statCell(stats.total_items, 'Items'),
        statCell(stats.total_outfits, 'Outfits'),
        statCell(stats.favorite_items, 'Favorites'),
        statCell(stats.planned_events, 'Upcoming events'),
        statCell(stats.remaining_slots, 'Free slots'),
      ].join('');
      replaceSkeleton('stats', '<div class="stat-grid" data-stagger>' + cells + '</div>');
      setTimeout(() => { initStagger(); initCounters(); }, 250);
    }

    function renderMostWorn(rows) {
      if (!rows || !rows.length) {
        replaceSkeleton('mostWorn', '<p class="muted">Nothing worn yet.</p>');
        return;
      }
      const html = rows.map((item) =>
        '<div class="most-worn"><span>' + escapeHtml(item.name) + '</span>' +
        '<span class="pill">' + Number(item.times_worn || 0) + '×</span></div>'
      ).join('');
      replaceSkeleton('mostWorn', html);
    }

    function renderRecent(rows) {
      if (!rows || !rows.length) {
        replaceSkeleton('recent', '<p class="muted">No items yet. Add some in the wardrobe.</p>');
        return;
      }
      const html = rows.map((item) =>
        '<div class="most-worn"><span>' + escapeHtml(item.name) + '</span>' +
        '<span class="muted">' + escapeHtml(formatTimestamp(item.created_utc)) + '</span></div>'
      ).join('');
      replaceSkeleton('recent', html);
    }

    function loadDashboard() {
      apiJSON('/api/v1/stats')
        .then((body) => {
          const stats = body.stats || {};
          renderStats(stats);
          renderMostWorn(stats.most_worn);
          renderRecent(stats.recent_additions);
        })
        .catch((err) => showToast('Failed to load stats: ' + err.message, 'error'));
      apiJSON('/api/v1/laundry')
        .then((body) => {
          const overview = (body && body.overview) || {};
          const urgent = (overview.needs_wash || []).length;
          if (urgent > 0) {
            showToast(urgent + ' item(s) need washing', 'info', 5000);
          }
        })
        .catch(() => {});
    }

    document.addEventListener('DOMContentLoaded', loadDashboard);
  </script>
</body>
</html>
`
