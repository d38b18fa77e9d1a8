package server

const outfitsHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>tailora outfits</title>
  <style>
` + uiPageChromeCSS + `
    h1 { margin: 0 0 4px; font-size: 24px; }
    p { margin: 0 0 10px; color: var(--muted); }
    .outfit-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 14px; }
    .outfit-card {
      border: 1px solid var(--line);
      border-radius: 12px;
      padding: 14px;
      background: #fffdf9;
      display: flex;
      flex-direction: column;
      gap: 8px;
    }
    .outfit-name { font-weight: 700; display: flex; justify-content: space-between; align-items: center; gap: 6px; }
    .outfit-items { font-size: 13px; color: var(--muted); }
    .outfit-actions { display: flex; gap: 6px; flex-wrap: wrap; margin-top: auto; }
    .outfit-actions button { font-size: 12px; padding: 6px 8px; }
    .like-button { font-size: 18px; color: #c9b8aa; background: none; border: none; padding: 2px; }
    .stars { color: var(--warn); letter-spacing: 2px; }
  </style>
</head>
<body>
  <main>
    <div class="card">
      <div class="header">
        <div>
          <h1>Outfits</h1>
          <p>Saved combinations, with a laundry check before you commit</p>
        </div>
        <div class="header-actions">
          <a class="nav-btn ripple" href="/">Home <span class="nav-emoji" aria-hidden="true">🏠</span></a>
          <a class="nav-btn ripple" href="/wardrobe">Wardrobe <span class="nav-emoji" aria-hidden="true">👕</span></a>
          <a class="nav-btn ripple" href="/planner">Planner <span class="nav-emoji" aria-hidden="true">📅</span></a>
        </div>
      </div>
    </div>
    <div class="card">
      <div id="outfits" class="skeleton" style="min-height:160px;"></div>
    </div>
  </main>
  <script src="/ui/shared.js"></script>
  <script src="/ui/confirm.js"></script>
  <script src="/ui/animations.js"></script>
  <script>
    function ratingStars(rating) {
      const n = Number(rating || 0);
      if (!n) return '';
      return '<span class="stars">' + '★'.repeat(Math.min(5, n)) + '</span>';
    }

    function outfitCard(outfit) {
      const names = (outfit.items || []).map((it) => it.name).filter(Boolean);
      const likedClass = outfit.favorite ? ' liked' : '';
      return '<div class="outfit-card tilt-card">' +
        '<div class="outfit-name"><span>' + escapeHtml(outfit.name) + '</span>' +
        '<button type="button" class="like-button' + likedClass + '" data-outfit-id="' + escapeHtml(outfit.id) + '" aria-label="Favorite">♥</button></div>' +
        '<div class="row"><span class="pill">' + escapeHtml(outfit.occasion || 'casual') + '</span>' +
        ratingStars(outfit.rating) +
        '<span class="muted">' + Number(outfit.times_worn || 0) + '× worn</span></div>' +
        '<div class="outfit-items">' + escapeHtml(names.join(' · ')) + '</div>' +
        '<div class="outfit-actions">' +
        '<button type="button" class="ripple check-btn" data-outfit-id="' + escapeHtml(outfit.id) + '">Laundry check</button>' +
        '<button type="button" class="ripple wear-btn" data-outfit-id="' + escapeHtml(outfit.id) + '">Wear</button>' +
        deleteForm('delete-outfit-' + outfit.id, '/forms/outfits/' + encodeURIComponent(outfit.id) + '/delete', '/outfits') +
        '<button type="button" class="danger confirm-delete" data-form-id="delete-outfit-' + escapeHtml(outfit.id) + '" data-item-name="' + escapeHtml(outfit.name) + '">Delete</button>' +
        '</div>' +
        '</div>';
    }

    function renderOutfits(outfits) {
      if (!outfits || !outfits.length) {
        replaceSkeleton('outfits', '<p class="muted">No outfits yet.</p>');
        return;
      }
      const html = '<div class="outfit-grid" data-stagger>' + outfits.map(outfitCard).join('') + '</div>';
      replaceSkeleton('outfits', html);
      setTimeout(() => { initStagger(); initTiltCards(); }, 250);
    }

    function loadOutfits() {
      apiJSON('/api/v1/outfits')
        .then((body) => renderOutfits(body.outfits || []))
        .catch((err) => showToast('Failed to load outfits: ' + err.message, 'error'));
    }

    document.addEventListener('click', (ev) => {
      const heart = ev.target && ev.target.closest && ev.target.closest('.like-button[data-outfit-id]');
      if (heart) {
        apiJSON('/api/v1/outfits/' + encodeURIComponent(heart.dataset.outfitId) + '/favorite', { method: 'POST' })
          .catch(() => showToast('Could not update favorite', 'error'));
        return;
      }
      const checkBtn = ev.target && ev.target.closest && ev.target.closest('.check-btn');
      if (checkBtn) {
        apiJSON('/api/v1/outfits/' + encodeURIComponent(checkBtn.dataset.outfitId) + '/laundry-check')
          .then((check) => {
            if (check.clear) {
              showToast('All pieces are ready to wear', 'success');
              return;
            }
            const blocked = (check.unavailable || []).map((it) => it.name);
            const due = (check.needs_wash || []).map((it) => it.name);
            const parts = [];
            if (blocked.length) parts.push('in the laundry: ' + blocked.join(', '));
            if (due.length) parts.push('due for a wash: ' + due.join(', '));
            showToast('Not ready: ' + parts.join('; '), 'error', 5000);
          })
          .catch((err) => showToast(err.message, 'error'));
        return;
      }
      const wearBtn = ev.target && ev.target.closest && ev.target.closest('.wear-btn');
      if (wearBtn) {
        apiJSON('/api/v1/outfits/' + encodeURIComponent(wearBtn.dataset.outfitId) + '/wear', { method: 'POST' })
          .then(() => { showToast('Outfit wear recorded', 'success'); loadOutfits(); })
          .catch((err) => showToast(err.message, 'error'));
      }
    });

    document.addEventListener('DOMContentLoaded', loadOutfits);
  </script>
</body>
</html>
`
