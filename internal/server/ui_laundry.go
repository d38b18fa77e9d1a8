package server

const laundryHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>tailora laundry</title>
  <style>
` + uiPageChromeCSS + `
    h1 { margin: 0 0 4px; font-size: 24px; }
    h2 { margin: 0 0 12px; font-size: 18px; }
    p { margin: 0 0 10px; color: var(--muted); }
    .bucket-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 14px; }
    .bucket { border: 1px solid var(--line); border-radius: 12px; padding: 14px; background: #fffdf9; }
    .bucket h3 { margin: 0 0 10px; font-size: 15px; }
    .laundry-row {
      display: flex;
      justify-content: space-between;
      align-items: center;
      gap: 8px;
      padding: 7px 0;
      border-bottom: 1px solid var(--line);
      font-size: 13px;
    }
    .laundry-row:last-child { border-bottom: none; }
    .laundry-row button { font-size: 12px; padding: 5px 8px; }
  </style>
</head>
<body>
  <main>
    <div class="card">
      <div class="header">
        <div>
          <h1>Laundry</h1>
          <p>What needs washing, what is in the machine, what is drying</p>
        </div>
        <div class="header-actions">
          <a class="nav-btn ripple" href="/">Home <span class="nav-emoji" aria-hidden="true">🏠</span></a>
          <a class="nav-btn ripple" href="/wardrobe">Wardrobe <span class="nav-emoji" aria-hidden="true">👕</span></a>
        </div>
      </div>
    </div>
    <div class="card">
      <div id="overview" class="skeleton" style="min-height:160px;"></div>
    </div>
  </main>
  <script src="/ui/shared.js"></script>
  <script src="/ui/confirm.js"></script>
  <script src="/ui/animations.js"></script>
  <script>
    function laundryRow(item, action) {
      const wears = Number(item.wears_since_wash || 0) + '/' + Number(item.max_wears_before_wash || 0);
      const ready = item.ready_utc ? ('ready ' + formatTimestamp(item.ready_utc)) : '';
      const actionHTML = action
        ? '<button type="button" class="ripple wash-btn" data-item-id="' + escapeHtml(item.id) + '">Wash</button>'
        : '<span class="muted">' + escapeHtml(ready) + '</span>';
      return '<div class="laundry-row"><span>' + escapeHtml(item.name) +
        ' <span class="muted">(' + escapeHtml(wears) + ')</span></span>' + actionHTML + '</div>';
    }

    function bucket(title, items, withAction) {
      const rows = (items || []).map((item) => laundryRow(item, withAction)).join('');
      return '<div class="bucket animate-on-scroll"><h3>' + escapeHtml(title) + '</h3>' +
        (rows || '<p class="muted">Nothing here.</p>') + '</div>';
    }

    function renderOverview(overview) {
      const html = '<div class="bucket-grid" data-stagger>' +
        bucket('Needs washing', overview.needs_wash, true) +
        bucket('Wash soon', overview.approaching_wash, true) +
        bucket('Washing', overview.washing, false) +
        bucket('Drying', overview.drying, false) +
        bucket('Dry cleaning', overview.dry_cleaning, false) +
        '</div>';
      replaceSkeleton('overview', html);
      setTimeout(() => { initStagger(); initScrollReveal(); }, 250);
    }

    function loadOverview() {
      apiJSON('/api/v1/laundry')
        .then((body) => renderOverview((body && body.overview) || {}))
        .catch((err) => showToast('Failed to load laundry: ' + err.message, 'error'));
    }

    document.addEventListener('click', (ev) => {
      const washBtn = ev.target && ev.target.closest && ev.target.closest('.wash-btn');
      if (!washBtn) return;
      apiJSON('/api/v1/items/' + encodeURIComponent(washBtn.dataset.itemId) + '/wash', { method: 'POST' })
        .then(() => { showSnackbar({ message: 'Washed. The item is drying now.' }); loadOverview(); })
        .catch((err) => showToast(err.message, 'error'));
    });

    document.addEventListener('DOMContentLoaded', loadOverview);
  </script>
</body>
</html>
`
