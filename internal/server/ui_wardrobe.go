package server

const wardrobeHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>tailora wardrobe</title>
  <style>
` + uiPageChromeCSS + `
    h1 { margin: 0 0 4px; font-size: 24px; }
    h2 { margin: 0 0 12px; font-size: 18px; }
    p { margin: 0 0 10px; color: var(--muted); }
    input, select {
      border: 1px solid var(--line);
      border-radius: 8px;
      padding: 9px 12px;
      font-size: 14px;
      background: #fff;
    }
    .row { display: flex; gap: 8px; flex-wrap: wrap; align-items: center; }
    .item-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 14px; }
    .item-card {
      border: 1px solid var(--line);
      border-radius: 12px;
      padding: 12px;
      background: #fffdf9;
      display: flex;
      flex-direction: column;
      gap: 8px;
    }
    .item-photo { width: 100%; height: 150px; object-fit: cover; border-radius: 8px; background: var(--bg2); }
    .item-name { font-weight: 700; display: flex; justify-content: space-between; align-items: center; gap: 6px; }
    .item-meta { font-size: 12px; color: var(--muted); }
    .item-actions { display: flex; gap: 6px; flex-wrap: wrap; margin-top: auto; }
    .item-actions button { font-size: 12px; padding: 6px 8px; }
    .like-button { font-size: 18px; color: #c9b8aa; background: none; border: none; padding: 2px; }
  </style>
</head>
<body>
  <main>
    <div class="card">
      <div class="header">
        <div>
          <h1>Wardrobe</h1>
          <p>Every piece you own, with its wear and wash state</p>
        </div>
        <div class="header-actions">
          <a class="nav-btn ripple" href="/">Home <span class="nav-emoji" aria-hidden="true">🏠</span></a>
          <a class="nav-btn ripple" href="/outfits">Outfits <span class="nav-emoji" aria-hidden="true">🧥</span></a>
          <a class="nav-btn ripple" href="/laundry">Laundry <span class="nav-emoji" aria-hidden="true">🧺</span></a>
        </div>
      </div>
    </div>
    <div class="card">
      <div class="row" style="margin-bottom:12px;">
        <input id="searchInput" type="search" placeholder="Search by name, brand, color, tag…" style="flex:1;min-width:220px;" />
        <select id="statusFilter">
          <option value="">All statuses</option>
          <option value="available">Available</option>
          <option value="washing">Washing</option>
          <option value="drying">Drying</option>
          <option value="dry_cleaning">Dry cleaning</option>
          <option value="loaned">Loaned</option>
        </select>
      </div>
      <div id="items" class="skeleton" style="min-height:160px;"></div>
    </div>
  </main>
  <script src="/ui/shared.js"></script>
  <script src="/ui/confirm.js"></script>
  <script src="/ui/animations.js"></script>
  <script>
    function itemCard(item) {
      const badge = wearBadge(item);
      const photo = itemImageURL(item);
      const photoHTML = photo
        ? '<img class="item-photo" src="' + escapeHtml(photo) + '" alt="" loading="lazy" />'
        : '<div class="item-photo"></div>';
      const likedClass = item.favorite ? ' liked' : '';
      return '<div class="item-card tilt-card">' +
        photoHTML +
        '<div class="item-name"><span>' + escapeHtml(item.name) + '</span>' +
        '<button type="button" class="like-button' + likedClass + '" data-item-id="' + escapeHtml(item.id) + '" aria-label="Favorite">♥</button></div>' +
        '<div class="item-meta">' + escapeHtml([item.brand, item.color, item.size, formatPrice(item.purchase_price)].filter(Boolean).join(' · ')) +
        (seasonEmojis(item) ? ' <span>' + seasonEmojis(item) + '</span>' : '') + '</div>' +
        '<div class="row">' +
        '<span class="' + itemStatusPillClass(item.status) + '">' + escapeHtml(itemStatusLabel(item.status)) + '</span>' +
        '<span class="' + badge.cls + '">' + escapeHtml(badge.label) + '</span>' +
        '</div>' +
        '<div class="item-actions">' +
        '<button type="button" class="ripple wear-btn" data-item-id="' + escapeHtml(item.id) + '"' + (isAvailableItemStatus(item.status) ? '' : ' disabled') + '>Wear</button>' +
        '<button type="button" class="ripple wash-btn" data-item-id="' + escapeHtml(item.id) + '">Wash</button>' +
        deleteForm('delete-item-' + item.id, '/forms/items/' + encodeURIComponent(item.id) + '/delete', '/wardrobe') +
        '<button type="button" class="danger confirm-delete" data-form-id="delete-item-' + escapeHtml(item.id) + '" data-item-name="' + escapeHtml(item.name) + '">Delete</button>' +
        '</div>' +
        '</div>';
    }

    function renderItems(items) {
      if (!items || !items.length) {
        replaceSkeleton('items', '<p class="muted">No items match.</p>');
        return;
      }
      const html = '<div class="item-grid" data-stagger>' + items.map(itemCard).join('') + '</div>';
      replaceSkeleton('items', html);
      setTimeout(() => { initStagger(); initTiltCards(); }, 250);
    }

    function loadItems() {
      const params = new URLSearchParams();
      const q = document.getElementById('searchInput').value.trim();
      const status = document.getElementById('statusFilter').value;
      if (q) params.set('q', q);
      if (status) params.set('status', status);
      const suffix = params.toString() ? ('?' + params.toString()) : '';
      apiJSON('/api/v1/items' + suffix)
        .then((body) => renderItems(body.items || []))
        .catch((err) => showToast('Failed to load items: ' + err.message, 'error'));
    }

    document.addEventListener('click', (ev) => {
      const heart = ev.target && ev.target.closest && ev.target.closest('.like-button[data-item-id]');
      if (heart) {
        apiJSON('/api/v1/items/' + encodeURIComponent(heart.dataset.itemId) + '/favorite', { method: 'POST' })
          .catch(() => showToast('Could not update favorite', 'error'));
        return;
      }
      const wearBtn = ev.target && ev.target.closest && ev.target.closest('.wear-btn');
      if (wearBtn) {
        apiJSON('/api/v1/items/' + encodeURIComponent(wearBtn.dataset.itemId) + '/wear', { method: 'POST' })
          .then(() => { showToast('Wear recorded', 'success'); loadItems(); })
          .catch((err) => showToast(err.message, 'error'));
        return;
      }
      const washBtn = ev.target && ev.target.closest && ev.target.closest('.wash-btn');
      if (washBtn) {
        apiJSON('/api/v1/items/' + encodeURIComponent(washBtn.dataset.itemId) + '/wash', { method: 'POST' })
          .then(() => { showSnackbar({ message: 'Washed. The item is drying now.' }); loadItems(); })
          .catch((err) => showToast(err.message, 'error'));
      }
    });

    let searchDebounce = null;
    document.addEventListener('DOMContentLoaded', () => {
      loadItems();
      document.getElementById('searchInput').addEventListener('input', () => {
        clearTimeout(searchDebounce);
        searchDebounce = setTimeout(loadItems, 250);
      });
      document.getElementById('statusFilter').addEventListener('change', loadItems);
    });
  </script>
</body>
</html>
`
