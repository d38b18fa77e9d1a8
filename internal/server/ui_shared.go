package server

const uiSharedJS = `function escapeHtml(s) {
  return (s || '').replace(/[&<>"']/g, c => ({ '&': '&amp;', '<': '&lt;', '>': '&gt;', '"': '&quot;', "'": '&#39;' }[c]));
}

function apiJSON(path, opts = {}) {
  const baseHeaders = { 'Content-Type': 'application/json' };
  const extraHeaders = (opts && opts.headers) || {};
  const request = {
    ...opts,
    cache: 'no-store',
    headers: { ...baseHeaders, ...extraHeaders },
  };
  return fetch(path, request)
    .then(async (res) => {
      if (!res.ok) {
        const text = await res.text();
        throw new Error(text || ('HTTP ' + res.status));
      }
      return res.json();
    });
}

function normalizedItemStatus(status) {
  return String(status || '').trim().toLowerCase();
}

function isAvailableItemStatus(status) {
  return normalizedItemStatus(status) === 'available';
}

function isLaundryItemStatus(status) {
  const normalized = normalizedItemStatus(status);
  return normalized === 'washing' || normalized === 'drying' || normalized === 'dry_cleaning';
}

function itemStatusLabel(status) {
  const normalized = normalizedItemStatus(status);
  if (normalized === 'dry_cleaning') return 'dry cleaning';
  return normalized || 'available';
}

function itemStatusPillClass(status) {
  const normalized = normalizedItemStatus(status);
  if (normalized === 'available') return 'pill ok';
  if (isLaundryItemStatus(normalized)) return 'pill warn';
  return 'pill';
}

function wearBadge(item) {
  const worn = Number((item && item.wears_since_wash) || 0);
  const max = Math.max(1, Number((item && item.max_wears_before_wash) || 1));
  if (worn >= max) return { label: 'needs wash', cls: 'pill bad' };
  if (worn / max >= 0.7) return { label: 'wash soon', cls: 'pill warn' };
  return { label: worn + '/' + max + ' wears', cls: 'pill ok' };
}

function formatCalendarDate(date) {
  const raw = String(date || '').trim();
  if (!raw) return '';
  const d = new Date(raw + 'T00:00:00');
  if (Number.isNaN(d.getTime())) return raw;
  return d.toLocaleDateString(undefined, {
    weekday: 'short',
    day: '2-digit',
    month: 'short',
  });
}

function formatTimestamp(ts) {
  if (!ts) return '';
  const d = new Date(ts);
  if (Number.isNaN(d.getTime())) return ts;
  return d.toLocaleString(undefined, {
    weekday: 'short',
    day: '2-digit',
    month: 'short',
    hour: '2-digit',
    minute: '2-digit',
    hour12: false,
  });
}

function formatPrice(value) {
  const n = Number(value);
  if (!Number.isFinite(n) || n <= 0) return '';
  return n.toLocaleString(undefined, { style: 'currency', currency: 'EUR' });
}

function seasonEmoji(season) {
  const map = { spring: '🌸', summer: '☀️', fall: '🍂', winter: '❄️', all_seasons: '🔄' };
  return map[String(season || '').trim().toLowerCase()] || '';
}

function seasonEmojis(item) {
  return ((item && item.seasons) || []).map(seasonEmoji).join('');
}

function itemImageURL(item) {
  const path = String((item && item.image_path) || '').trim();
  if (!path) return '';
  return '/media/' + path.split('/').map(encodeURIComponent).join('/');
}

function deleteForm(formID, action, returnTo) {
  return '<form id="' + escapeHtml(formID) + '" method="post" action="' + escapeHtml(action) + '" style="display:inline;">' +
    '<input type="hidden" name="return_to" value="' + escapeHtml(returnTo) + '" />' +
    '</form>';
}

function ensureSnackbarStyles() {
  if (document.getElementById('__tailoraSnackbarStyles')) return;
  const style = document.createElement('style');
  style.id = '__tailoraSnackbarStyles';
  style.textContent = [
    '#tailoraSnackbarHost{position:fixed;right:14px;bottom:14px;z-index:2500;display:flex;flex-direction:column;gap:10px;max-width:min(480px,92vw);pointer-events:none;}',
    '.tailora-snackbar{pointer-events:auto;display:flex;align-items:center;justify-content:space-between;gap:10px;background:#3a2e26;color:#f7efe7;border:1px solid #5c4a3c;border-radius:10px;padding:10px 12px;box-shadow:0 16px 32px rgba(43,36,32,.35);}',
    '.tailora-snackbar-msg{font-size:13px;line-height:1.25;word-break:break-word;}',
    '.tailora-snackbar-btn{font:inherit;font-size:12px;font-weight:600;padding:6px 8px;border-radius:7px;border:1px solid #c9ab91;background:#f4e8dc;color:#3a2e26;cursor:pointer;}',
  ].join('');
  document.head.appendChild(style);
}

function snackbarHost() {
  ensureSnackbarStyles();
  let host = document.getElementById('tailoraSnackbarHost');
  if (host) return host;
  host = document.createElement('div');
  host.id = 'tailoraSnackbarHost';
  document.body.appendChild(host);
  return host;
}

function showSnackbar(opts) {
  const options = opts || {};
  const message = String(options.message || '').trim();
  if (!message) return;
  const host = snackbarHost();
  const item = document.createElement('div');
  item.className = 'tailora-snackbar';
  const msg = document.createElement('div');
  msg.className = 'tailora-snackbar-msg';
  msg.textContent = message;
  item.appendChild(msg);

  const dismissBtn = document.createElement('button');
  dismissBtn.type = 'button';
  dismissBtn.className = 'tailora-snackbar-btn';
  dismissBtn.textContent = 'Dismiss';
  dismissBtn.onclick = () => {
    if (item.parentNode) item.parentNode.removeChild(item);
  };
  item.appendChild(dismissBtn);
  host.appendChild(item);

  const ttl = Math.max(1500, Number(options.timeoutMs || 8000));
  setTimeout(() => {
    if (item.parentNode) item.parentNode.removeChild(item);
  }, ttl);
}
`
